package admin

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingNotifier struct {
	mu        sync.Mutex
	successes []string
	errors    []string
}

func (n *recordingNotifier) Success(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.successes = append(n.successes, msg)
}

func (n *recordingNotifier) Error(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.errors = append(n.errors, msg)
}

func (n *recordingNotifier) errorCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.errors)
}

type stubConfirmer struct {
	answer bool
	calls  int
}

func (c *stubConfirmer) Confirm(title, text string) bool {
	c.calls++
	return c.answer
}

func skillsSchema() Schema  { return Families["skills"] }
func contactSchema() Schema { return Families["contact"] }

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestLoadReplacesMirrorPreservingOrder(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/skills", r.URL.Path)
		writeJSON(w, http.StatusOK, []map[string]any{
			{"_id": "s1", "name": "Sculpting", "percentage": 85},
			{"_id": "s2", "name": "Texturing", "percentage": 70},
		})
	}))
	defer ts.Close()

	ctrl := NewController(skillsSchema(), NewClient(ts.URL, ""), nil, nil)
	require.NoError(t, ctrl.Load(context.Background()))

	items := ctrl.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "s1", items[0].ID())
	assert.Equal(t, "s2", items[1].ID())
	assert.Equal(t, "Sculpting", items[0].Get("name"))
}

func TestLoadFailureKeepsPriorMirror(t *testing.T) {
	fail := false
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fail {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "boom"})
			return
		}
		writeJSON(w, http.StatusOK, []map[string]any{{"_id": "s1", "name": "Sculpting", "percentage": 85}})
	}))
	defer ts.Close()

	notify := &recordingNotifier{}
	ctrl := NewController(skillsSchema(), NewClient(ts.URL, ""), notify, nil)
	require.NoError(t, ctrl.Load(context.Background()))

	fail = true
	err := ctrl.Load(context.Background())
	require.Error(t, err)
	assert.Len(t, ctrl.Items(), 1, "failed load must not clobber the mirror")
	assert.Equal(t, 1, notify.errorCount())
}

func TestCreateAppendsCanonicalItemOnce(t *testing.T) {
	creates := 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			creates++
			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "Sculpting", body["name"])
			assert.Equal(t, float64(85), body["percentage"], "number fields are sent as numbers")
			writeJSON(w, http.StatusCreated, map[string]any{"_id": "X", "name": "Sculpting", "percentage": 85})
			return
		}
		writeJSON(w, http.StatusOK, []map[string]any{})
	}))
	defer ts.Close()

	ctrl := NewController(skillsSchema(), NewClient(ts.URL, ""), nil, nil)
	require.NoError(t, ctrl.Load(context.Background()))

	ctrl.BeginCreate()
	require.NoError(t, ctrl.SetField("name", "Sculpting"))
	require.NoError(t, ctrl.SetField("percentage", "85"))
	require.NoError(t, ctrl.Submit(context.Background()))

	assert.Equal(t, 1, creates)
	items := ctrl.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "X", items[0].ID())
	assert.Equal(t, ModeIdle, ctrl.Mode())
}

func TestBeginEditPopulatesDraftFromMirror(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []map[string]any{{"_id": "s1", "name": "Sculpting", "percentage": 85}})
	}))
	defer ts.Close()

	ctrl := NewController(skillsSchema(), NewClient(ts.URL, ""), nil, nil)
	require.NoError(t, ctrl.Load(context.Background()))

	require.NoError(t, ctrl.BeginEdit("s1"))
	assert.Equal(t, ModeEditing, ctrl.Mode())
	assert.Equal(t, "s1", ctrl.EditingID())
	assert.Equal(t, "Sculpting", ctrl.DraftValue("name"))
	assert.Equal(t, "85", ctrl.DraftValue("percentage"))
}

func TestBeginEditStaleIDIsNoop(t *testing.T) {
	notify := &recordingNotifier{}
	ctrl := NewController(skillsSchema(), NewClient("http://unused", ""), notify, nil)

	err := ctrl.BeginEdit("gone")
	assert.ErrorIs(t, err, ErrStaleItem)
	assert.Equal(t, ModeIdle, ctrl.Mode())
	assert.Equal(t, 1, notify.errorCount())
}

func TestSubmitFailurePreservesDraftAndMirror(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPut {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "boom"})
			return
		}
		writeJSON(w, http.StatusOK, []map[string]any{{"_id": "s1", "name": "Sculpting", "percentage": 85}})
	}))
	defer ts.Close()

	notify := &recordingNotifier{}
	ctrl := NewController(skillsSchema(), NewClient(ts.URL, ""), notify, nil)
	require.NoError(t, ctrl.Load(context.Background()))
	require.NoError(t, ctrl.BeginEdit("s1"))
	require.NoError(t, ctrl.SetField("name", "Modelling"))

	err := ctrl.Submit(context.Background())
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)

	// the admin's typed edits are not lost and the mirror is untouched
	assert.Equal(t, "Modelling", ctrl.DraftValue("name"))
	assert.Equal(t, ModeEditing, ctrl.Mode())
	assert.Equal(t, "Sculpting", ctrl.Items()[0].Get("name"))
	assert.False(t, ctrl.Busy())
}

func TestSubmitUpdateReplacesByID(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPut:
			require.Equal(t, "/api/skills/s1", r.URL.Path)
			writeJSON(w, http.StatusOK, map[string]any{"_id": "s1", "name": "Modelling", "percentage": 90})
		default:
			writeJSON(w, http.StatusOK, []map[string]any{
				{"_id": "s1", "name": "Sculpting", "percentage": 85},
				{"_id": "s2", "name": "Texturing", "percentage": 70},
			})
		}
	}))
	defer ts.Close()

	ctrl := NewController(skillsSchema(), NewClient(ts.URL, ""), nil, nil)
	require.NoError(t, ctrl.Load(context.Background()))
	require.NoError(t, ctrl.BeginEdit("s1"))
	require.NoError(t, ctrl.SetField("name", "Modelling"))
	require.NoError(t, ctrl.SetField("percentage", "90"))
	require.NoError(t, ctrl.Submit(context.Background()))

	items := ctrl.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "Modelling", items[0].Get("name"))
	assert.Equal(t, "Texturing", items[1].Get("name"), "other entries untouched")
	assert.Equal(t, ModeIdle, ctrl.Mode())
}

func TestRequiredFieldBlocksNetworkCall(t *testing.T) {
	requests := 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		writeJSON(w, http.StatusOK, map[string]any{})
	}))
	defer ts.Close()

	ctrl := NewController(skillsSchema(), NewClient(ts.URL, ""), nil, nil)
	ctrl.BeginCreate()
	require.NoError(t, ctrl.SetField("percentage", "50"))

	err := ctrl.Submit(context.Background())
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "name", vErr.Field)
	assert.Equal(t, 0, requests, "validation failures must not reach the network")
	assert.Equal(t, ModeCreating, ctrl.Mode())
}

func TestRemoveDeclinedIsNoop(t *testing.T) {
	deletes := 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete {
			deletes++
			writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
			return
		}
		writeJSON(w, http.StatusOK, []map[string]any{{"_id": "c1", "heading": "X", "contactUrl": "https://x"}})
	}))
	defer ts.Close()

	confirm := &stubConfirmer{answer: false}
	ctrl := NewController(contactSchema(), NewClient(ts.URL, ""), nil, confirm)
	require.NoError(t, ctrl.Load(context.Background()))

	require.NoError(t, ctrl.Remove(context.Background(), "c1"))
	assert.Equal(t, 1, confirm.calls)
	assert.Equal(t, 0, deletes)
	require.Len(t, ctrl.Items(), 1)
	assert.Equal(t, "X", ctrl.Items()[0].Get("heading"))
}

func TestRemoveConfirmedDeletesOnce(t *testing.T) {
	deletes := 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete {
			require.Equal(t, "/api/contact/c1", r.URL.Path)
			deletes++
			writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
			return
		}
		writeJSON(w, http.StatusOK, []map[string]any{{"_id": "c1", "heading": "X", "contactUrl": "https://x"}})
	}))
	defer ts.Close()

	ctrl := NewController(contactSchema(), NewClient(ts.URL, ""), nil, &stubConfirmer{answer: true})
	require.NoError(t, ctrl.Load(context.Background()))

	require.NoError(t, ctrl.Remove(context.Background(), "c1"))
	assert.Equal(t, 1, deletes)
	assert.Empty(t, ctrl.Items())
}

func TestRemoveFailureKeepsMirror(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "boom"})
			return
		}
		writeJSON(w, http.StatusOK, []map[string]any{{"_id": "c1", "heading": "X", "contactUrl": "https://x"}})
	}))
	defer ts.Close()

	notify := &recordingNotifier{}
	ctrl := NewController(contactSchema(), NewClient(ts.URL, ""), notify, &stubConfirmer{answer: true})
	require.NoError(t, ctrl.Load(context.Background()))

	require.Error(t, ctrl.Remove(context.Background(), "c1"))
	assert.Len(t, ctrl.Items(), 1)
	assert.Equal(t, 1, notify.errorCount())
}

func TestAddSkillEndToEndWithDerivedView(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			writeJSON(w, http.StatusCreated, map[string]any{"_id": "s1", "name": "Sculpting", "percentage": 85})
			return
		}
		writeJSON(w, http.StatusOK, []map[string]any{})
	}))
	defer ts.Close()

	ctrl := NewController(skillsSchema(), NewClient(ts.URL, ""), nil, nil)

	// the chart is a pure derivation of the mirror
	var chart [][]Item
	ctrl.Subscribe(func() { chart = append(chart, ctrl.Items()) })

	require.NoError(t, ctrl.Load(context.Background()))
	ctrl.BeginCreate()
	require.NoError(t, ctrl.SetField("name", "Sculpting"))
	require.NoError(t, ctrl.SetField("percentage", "85"))
	require.NoError(t, ctrl.Submit(context.Background()))

	items := ctrl.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "s1", items[0].ID())
	assert.Equal(t, "Sculpting", items[0].Get("name"))
	assert.Equal(t, "85", items[0].Get("percentage"))

	require.NotEmpty(t, chart)
	last := chart[len(chart)-1]
	require.Len(t, last, 1)
	assert.Equal(t, "s1", last[0].ID())
}

func TestSecondSubmitWhileInFlightIsRejected(t *testing.T) {
	release := make(chan struct{})
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			<-release
			writeJSON(w, http.StatusCreated, map[string]any{"_id": "s1", "name": "A", "percentage": 1})
			return
		}
		writeJSON(w, http.StatusOK, []map[string]any{})
	}))
	defer ts.Close()

	ctrl := NewController(skillsSchema(), NewClient(ts.URL, ""), nil, nil)
	ctrl.BeginCreate()
	require.NoError(t, ctrl.SetField("name", "A"))
	require.NoError(t, ctrl.SetField("percentage", "1"))

	done := make(chan error, 1)
	go func() { done <- ctrl.Submit(context.Background()) }()

	// wait for the first submit to take the busy flag
	require.Eventually(t, ctrl.Busy, time.Second, time.Millisecond)

	err := ctrl.Submit(context.Background())
	assert.ErrorIs(t, err, ErrBusy)

	close(release)
	require.NoError(t, <-done)
	assert.Len(t, ctrl.Items(), 1, "the duplicate intent must not create a second item")
}

func TestSupersededLoadResultIsDiscarded(t *testing.T) {
	var (
		mu      sync.Mutex
		calls   int
		release = make(chan struct{})
	)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		calls++
		n := calls
		mu.Unlock()
		if n == 1 {
			<-release // first fetch resolves last
			writeJSON(w, http.StatusOK, []map[string]any{{"_id": "old", "name": "Old", "percentage": 1}})
			return
		}
		writeJSON(w, http.StatusOK, []map[string]any{{"_id": "new", "name": "New", "percentage": 2}})
	}))
	defer ts.Close()

	ctrl := NewController(skillsSchema(), NewClient(ts.URL, ""), nil, nil)

	done := make(chan error, 1)
	go func() { done <- ctrl.Load(context.Background()) }()

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return calls == 1
	}, time.Second, time.Millisecond)

	require.NoError(t, ctrl.Load(context.Background()))
	close(release)
	require.NoError(t, <-done)

	items := ctrl.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "new", items[0].ID(), "stale load result must not overwrite the newer one")
}

func TestMultipartSubmitAttachesOnlyStagedFiles(t *testing.T) {
	var gotTitle string
	var gotFiles []string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			require.NoError(t, r.ParseMultipartForm(1<<20))
			gotTitle = r.FormValue("title")
			gotFiles = nil
			for name := range r.MultipartForm.File {
				gotFiles = append(gotFiles, name)
			}
			writeJSON(w, http.StatusCreated, map[string]any{"_id": "sc1", "title": gotTitle})
			return
		}
		writeJSON(w, http.StatusOK, []map[string]any{})
	}))
	defer ts.Close()

	pdf := filepath.Join(t.TempDir(), "ep1.pdf")
	require.NoError(t, os.WriteFile(pdf, []byte("%PDF-1.4"), 0o600))

	ctrl := NewController(Families["scripts"], NewClient(ts.URL, ""), nil, nil)
	ctrl.BeginCreate()
	require.NoError(t, ctrl.SetField("title", "Episode 1"))
	require.NoError(t, ctrl.SetField("description", "pilot"))
	require.NoError(t, ctrl.StageFile("pdf", pdf))

	require.NoError(t, ctrl.Submit(context.Background()))
	assert.Equal(t, "Episode 1", gotTitle)
	assert.Equal(t, []string{"pdf"}, gotFiles, "unstaged file fields are not submitted")
}

func TestSingletonUpsertReplacesMirror(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			require.Equal(t, "/api/about", r.URL.Path, "singletons upsert through their create endpoint")
			require.NoError(t, r.ParseMultipartForm(1<<20))
			writeJSON(w, http.StatusOK, map[string]any{
				"_id":         "a1",
				"subheading":  r.FormValue("subheading"),
				"description": r.FormValue("description"),
				"purpleText":  r.FormValue("purpleText"),
				"image":       "uploads/kept.png",
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"_id": "a1", "subheading": "old", "description": "old", "purpleText": "old",
			"image": "uploads/kept.png",
		})
	}))
	defer ts.Close()

	ctrl := NewController(Families["about"], NewClient(ts.URL, ""), nil, nil)
	require.NoError(t, ctrl.Load(context.Background()))
	require.NotNil(t, ctrl.Single())

	require.NoError(t, ctrl.BeginEdit(""))
	assert.Equal(t, "old", ctrl.DraftValue("subheading"))

	require.NoError(t, ctrl.SetField("subheading", "new"))
	require.NoError(t, ctrl.Submit(context.Background()))

	single := ctrl.Single()
	require.NotNil(t, single)
	assert.Equal(t, "new", single.Get("subheading"))
	assert.Equal(t, "uploads/kept.png", single.Get("image"), "server-kept file URL flows back into the mirror")
	assert.Equal(t, ModeIdle, ctrl.Mode())
}

func TestSingletonToleratesArrayWrappedWireShape(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []map[string]any{{"_id": "t1", "text": "hello"}})
	}))
	defer ts.Close()

	ctrl := NewController(Families["bigtext"], NewClient(ts.URL, ""), nil, nil)
	require.NoError(t, ctrl.Load(context.Background()))

	single := ctrl.Single()
	require.NotNil(t, single)
	assert.Equal(t, "hello", single.Get("text"))
}

func TestSubmitWithoutDraft(t *testing.T) {
	ctrl := NewController(skillsSchema(), NewClient("http://unused", ""), nil, nil)
	assert.ErrorIs(t, ctrl.Submit(context.Background()), ErrNoDraft)
}

func TestLoadIsolationAcrossControllers(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/skills":
			writeJSON(w, http.StatusOK, []map[string]any{{"_id": "s1", "name": "A", "percentage": 1}})
		case "/api/strength":
			writeJSON(w, http.StatusOK, []map[string]any{{"_id": "st1", "name": "B", "percentage": 2}})
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
	defer ts.Close()

	skillsCtrl := NewController(Families["skills"], NewClient(ts.URL, ""), nil, nil)
	strengthCtrl := NewController(Families["strength"], NewClient(ts.URL, ""), nil, nil)

	require.NoError(t, skillsCtrl.Load(context.Background()))
	assert.Empty(t, strengthCtrl.Items(), "loading one family must not touch another's mirror")

	require.NoError(t, strengthCtrl.Load(context.Background()))
	require.Len(t, skillsCtrl.Items(), 1)
	require.Len(t, strengthCtrl.Items(), 1)
	assert.Equal(t, "s1", skillsCtrl.Items()[0].ID())
	assert.Equal(t, "st1", strengthCtrl.Items()[0].ID())
}

func TestItemGetRendering(t *testing.T) {
	it := Item{"_id": "x", "percentage": float64(85), "ratio": 1.5, "tags": []any{"a", "b"}, "nilval": nil}
	assert.Equal(t, "x", it.ID())
	assert.Equal(t, "85", it.Get("percentage"))
	assert.Equal(t, "1.5", it.Get("ratio"))
	assert.Equal(t, "a, b", it.Get("tags"))
	assert.Equal(t, "", it.Get("nilval"))
	assert.Equal(t, "", it.Get("missing"))
}

func TestValidationErrorMessage(t *testing.T) {
	err := &ValidationError{Field: "name", Reason: "is required"}
	assert.Equal(t, `field "name" is required`, err.Error())

	api := &APIError{Status: 500, Message: "boom"}
	assert.Equal(t, fmt.Sprintf("server returned %d: %s", 500, "boom"), api.Error())
}
