package admin

import (
	"context"
	"net/http"
	"strconv"
	"sync"
)

type Mode string

const (
	ModeIdle     Mode = "idle-list"
	ModeCreating Mode = "creating"
	ModeEditing  Mode = "editing"
)

// Notifier receives the transient user-facing feedback the dashboard showed
// as toasts.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// Confirmer gates destructive actions behind an explicit yes/no prompt.
type Confirmer interface {
	Confirm(title, text string) bool
}

type nopNotifier struct{}

func (nopNotifier) Success(string) {}
func (nopNotifier) Error(string)   {}

type denyConfirmer struct{}

func (denyConfirmer) Confirm(string, string) bool { return false }

// Controller owns the mirror, draft and mode for one resource family. The
// mirror is the single source of truth for rendering between network calls
// and is only mutated after a call resolves successfully.
type Controller struct {
	schema  Schema
	client  *Client
	notify  Notifier
	confirm Confirmer

	mu      sync.Mutex
	mirror  []Item // collection families
	single  Item   // singleton families
	values  map[string]string
	files   map[string][]string
	mode    Mode
	editID  string
	busy    bool
	loadGen uint64
	subs    []func()
}

func NewController(schema Schema, client *Client, notify Notifier, confirm Confirmer) *Controller {
	if notify == nil {
		notify = nopNotifier{}
	}
	if confirm == nil {
		confirm = denyConfirmer{}
	}
	return &Controller{
		schema:  schema,
		client:  client,
		notify:  notify,
		confirm: confirm,
		mode:    ModeIdle,
		values:  map[string]string{},
		files:   map[string][]string{},
	}
}

func (c *Controller) Schema() Schema { return c.schema }

// Subscribe registers a derived view recomputed after every mirror change.
func (c *Controller) Subscribe(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subs = append(c.subs, fn)
}

func (c *Controller) fireChanged() {
	c.mu.Lock()
	subs := make([]func(), len(c.subs))
	copy(subs, c.subs)
	c.mu.Unlock()
	for _, fn := range subs {
		fn()
	}
}

// Items returns a copy of the collection mirror.
func (c *Controller) Items() []Item {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Item, len(c.mirror))
	copy(out, c.mirror)
	return out
}

// Single returns the singleton mirror, or nil before the first load.
func (c *Controller) Single() Item {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.single
}

func (c *Controller) Mode() Mode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mode
}

func (c *Controller) EditingID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.editID
}

func (c *Controller) Busy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.busy
}

func (c *Controller) DraftValue(name string) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.values[name]
}

func (c *Controller) StagedFiles(name string) []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.files[name]))
	copy(out, c.files[name])
	return out
}

// Load fetches the resource and replaces the mirror wholesale on success.
// On failure the mirror keeps its prior value. A result that arrives after a
// newer Load started is discarded.
func (c *Controller) Load(ctx context.Context) error {
	c.mu.Lock()
	c.loadGen++
	gen := c.loadGen
	c.mu.Unlock()

	var (
		items  []Item
		single Item
		err    error
	)
	if c.schema.Shape == Collection {
		err = c.client.GetJSON(ctx, c.schema.listPath(), &items)
	} else {
		single, err = c.fetchSingleton(ctx)
	}

	c.mu.Lock()
	if gen != c.loadGen {
		c.mu.Unlock()
		return nil // superseded by a newer load
	}
	if err != nil {
		c.mu.Unlock()
		c.notify.Error("Failed to load " + c.schema.Family)
		return err
	}
	if c.schema.Shape == Collection {
		c.mirror = items
	} else {
		c.single = single
	}
	c.mu.Unlock()

	c.fireChanged()
	return nil
}

// fetchSingleton tolerates the array-wrapped wire shape some singleton
// endpoints use: the first element wins, an empty array means no value yet.
func (c *Controller) fetchSingleton(ctx context.Context) (Item, error) {
	var raw any
	if err := c.client.GetJSON(ctx, c.schema.listPath(), &raw); err != nil {
		return nil, err
	}
	switch v := raw.(type) {
	case map[string]any:
		if len(v) == 0 {
			return nil, nil
		}
		return Item(v), nil
	case []any:
		if len(v) == 0 {
			return nil, nil
		}
		if m, ok := v[0].(map[string]any); ok {
			return Item(m), nil
		}
	}
	return nil, nil
}

// BeginCreate resets the draft to defaults and enters create mode. No
// network call.
func (c *Controller) BeginCreate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values = map[string]string{}
	c.files = map[string][]string{}
	c.mode = ModeCreating
	c.editID = ""
}

// BeginEdit copies the identified item's field values into the draft and
// enters edit mode. An ID that is no longer in the mirror is a no-op with
// ErrStaleItem. No network call.
func (c *Controller) BeginEdit(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var target Item
	if c.schema.Shape == Singleton {
		if c.single != nil && (id == "" || c.single.ID() == id) {
			target = c.single
		}
	} else {
		for _, it := range c.mirror {
			if it.ID() == id {
				target = it
				break
			}
		}
	}
	if target == nil {
		c.notify.Error("That item no longer exists. Reload and try again.")
		return ErrStaleItem
	}

	c.values = map[string]string{}
	c.files = map[string][]string{}
	for _, f := range c.schema.Fields {
		if f.IsFile() {
			continue // file fields are write-only; existing URLs are display-only
		}
		c.values[f.Name] = target.Get(f.Name)
	}
	c.mode = ModeEditing
	c.editID = target.ID()
	return nil
}

// SetField updates one text/number value of the draft.
func (c *Controller) SetField(name, value string) error {
	f, ok := c.schema.field(name)
	if !ok {
		return &ValidationError{Field: name, Reason: "is not part of this resource"}
	}
	if f.IsFile() {
		return &ValidationError{Field: name, Reason: "is a file field; stage a file instead"}
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values[name] = value
	return nil
}

// StageFile attaches a local file to the draft. A single-file field keeps
// only the last staged file; a multi-file field accumulates.
func (c *Controller) StageFile(name, path string) error {
	f, ok := c.schema.field(name)
	if !ok {
		return &ValidationError{Field: name, Reason: "is not part of this resource"}
	}
	if !f.IsFile() {
		return &ValidationError{Field: name, Reason: "is not a file field"}
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if f.Kind == KindFile {
		c.files[name] = []string{path}
	} else {
		c.files[name] = append(c.files[name], path)
	}
	return nil
}

// Submit sends the draft. In create mode it POSTs to the collection
// endpoint and appends the returned canonical item; in edit mode it PUTs to
// the item endpoint and replaces the matching entry. Required fields are
// checked before any network call. A submit while another is in flight is
// rejected with ErrBusy. On failure the draft and mode are preserved so the
// admin's input is not lost.
func (c *Controller) Submit(ctx context.Context) error {
	c.mu.Lock()
	if c.mode == ModeIdle {
		c.mu.Unlock()
		return ErrNoDraft
	}
	if err := c.validateLocked(); err != nil {
		c.mu.Unlock()
		c.notify.Error(err.Error())
		return err
	}
	if c.busy {
		c.mu.Unlock()
		return ErrBusy
	}
	c.busy = true
	mode := c.mode
	editID := c.editID
	values := make(map[string]string, len(c.values))
	for k, v := range c.values {
		values[k] = v
	}
	files := make(map[string][]string, len(c.files))
	for k, v := range c.files {
		files[k] = v
	}
	c.mu.Unlock()

	created, err := c.send(ctx, mode, editID, values, files)

	c.mu.Lock()
	c.busy = false
	if err != nil {
		c.mu.Unlock()
		c.notify.Error("Failed to save " + c.schema.Family + ": " + err.Error())
		return err
	}

	switch {
	case c.schema.Shape == Singleton:
		c.single = created
	case mode == ModeCreating:
		c.mirror = append(c.mirror, created)
	default:
		for i, it := range c.mirror {
			if it.ID() == editID {
				c.mirror[i] = created
				break
			}
		}
	}
	c.mode = ModeIdle
	c.editID = ""
	c.values = map[string]string{}
	c.files = map[string][]string{}
	c.mu.Unlock()

	c.fireChanged()
	c.notify.Success("Saved " + c.schema.Family + " successfully")
	return nil
}

func (c *Controller) send(ctx context.Context, mode Mode, editID string, values map[string]string, files map[string][]string) (Item, error) {
	// singletons upsert through their create endpoint; only collection
	// items have per-ID update routes
	method := http.MethodPost
	path := c.schema.createPath()
	if mode == ModeEditing && c.schema.Shape == Collection {
		method = http.MethodPut
		path = c.schema.itemPath(editID)
	}

	var created Item
	if c.schema.HasFiles() {
		if err := c.client.SendMultipart(ctx, method, path, values, files, &created); err != nil {
			return nil, err
		}
		return created, nil
	}

	payload, err := c.jsonPayload(values)
	if err != nil {
		return nil, err
	}
	if method == http.MethodPut {
		err = c.client.PutJSON(ctx, path, payload, &created)
	} else {
		err = c.client.PostJSON(ctx, path, payload, &created)
	}
	if err != nil {
		return nil, err
	}
	return created, nil
}

// jsonPayload serializes the draft for file-less families, sending number
// fields as numbers.
func (c *Controller) jsonPayload(values map[string]string) (map[string]any, error) {
	payload := make(map[string]any, len(values))
	for _, f := range c.schema.Fields {
		if f.IsFile() {
			continue
		}
		v := values[f.Name]
		if f.Kind == KindNumber {
			if v == "" {
				continue
			}
			n, err := strconv.Atoi(v)
			if err != nil {
				return nil, &ValidationError{Field: f.Name, Reason: "must be a number"}
			}
			payload[f.Name] = n
			continue
		}
		payload[f.Name] = v
	}
	return payload, nil
}

func (c *Controller) validateLocked() error {
	for _, f := range c.schema.Fields {
		if !f.Required {
			continue
		}
		if f.IsFile() {
			// an existing file satisfies the requirement on edit
			if c.mode == ModeCreating && len(c.files[f.Name]) == 0 {
				return &ValidationError{Field: f.Name, Reason: "requires a file"}
			}
			continue
		}
		if c.values[f.Name] == "" {
			return &ValidationError{Field: f.Name, Reason: "is required"}
		}
		if f.Kind == KindNumber {
			if _, err := strconv.Atoi(c.values[f.Name]); err != nil {
				return &ValidationError{Field: f.Name, Reason: "must be a number"}
			}
		}
	}
	return nil
}

// Remove deletes an item after explicit confirmation. Declining is a no-op
// with zero network calls. On success the entry leaves the mirror; on
// failure the mirror is untouched.
func (c *Controller) Remove(ctx context.Context, id string) error {
	if !c.confirm.Confirm("Are you sure?", "You won't be able to revert this!") {
		return nil
	}

	c.mu.Lock()
	if c.busy {
		c.mu.Unlock()
		return ErrBusy
	}
	c.busy = true
	c.mu.Unlock()

	err := c.client.Delete(ctx, c.schema.itemPath(id))

	c.mu.Lock()
	c.busy = false
	if err != nil {
		c.mu.Unlock()
		c.notify.Error("Failed to delete " + c.schema.Family + ": " + err.Error())
		return err
	}

	kept := c.mirror[:0:0]
	for _, it := range c.mirror {
		if it.ID() != id {
			kept = append(kept, it)
		}
	}
	c.mirror = kept
	if c.single != nil && c.single.ID() == id {
		c.single = nil
	}
	if c.mode == ModeEditing && c.editID == id {
		c.mode = ModeIdle
		c.editID = ""
	}
	c.mu.Unlock()

	c.fireChanged()
	c.notify.Success("Deleted successfully")
	return nil
}
