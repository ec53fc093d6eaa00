package admin

import "sort"

// Families is the full set of resource schemas the dashboard edits. Each
// screen of the old dashboard maps to one (or a few) of these.
var Families = map[string]Schema{
	"about": {
		Family:   "about",
		Basepath: "/api/about",
		Shape:    Singleton,
		Fields: []Field{
			{Name: "subheading", Kind: KindLongText, Required: true},
			{Name: "description", Kind: KindLongText, Required: true},
			{Name: "purpleText", Kind: KindLongText, Required: true},
			{Name: "image", Kind: KindFile},
			{Name: "pdf", Kind: KindFile},
		},
	},
	"video": {
		Family:     "video",
		Basepath:   "/api/video",
		CreatePath: "/api/video/add",
		ListPath:   "/api/video/latest",
		Shape:      Singleton,
		Fields: []Field{
			{Name: "video", Kind: KindFile, Required: true},
		},
	},
	"bigtext": {
		Family:   "bigtext",
		Basepath: "/api/textLink/bigText",
		Shape:    Singleton,
		Fields: []Field{
			{Name: "text", Kind: KindText, Required: true},
		},
	},
	"links": {
		Family:   "links",
		Basepath: "/api/textLink/link",
		Shape:    Singleton,
		Fields: []Field{
			{Name: "generalTitle", Kind: KindText, Required: true},
			{Name: "generalUrl", Kind: KindText, Required: true},
			{Name: "instaTitle", Kind: KindText, Required: true},
			{Name: "instaUrl", Kind: KindText, Required: true},
		},
	},
	"images": {
		Family:     "images",
		Basepath:   "/api/images",
		CreatePath: "/api/images/upload",
		Shape:      Collection,
		Fields: []Field{
			{Name: "images", Kind: KindFiles, Required: true},
		},
	},
	"characters": {
		Family:     "characters",
		Basepath:   "/api/content",
		CreatePath: "/api/content/upload",
		Shape:      Collection,
		Fields:     workFields,
	},
	"environments": {
		Family:     "environments",
		Basepath:   "/api/environment",
		CreatePath: "/api/environment/upload",
		Shape:      Collection,
		Fields:     workFields,
	},
	"scripts": {
		Family:   "scripts",
		Basepath: "/api/scripts",
		Shape:    Collection,
		Fields: []Field{
			{Name: "title", Kind: KindText, Required: true},
			{Name: "description", Kind: KindLongText, Required: true},
			{Name: "image", Kind: KindFile},
			{Name: "pdf", Kind: KindFile},
		},
	},
	"skills": {
		Family:   "skills",
		Basepath: "/api/skills",
		Shape:    Collection,
		Fields:   chartFields,
	},
	"strength": {
		Family:   "strength",
		Basepath: "/api/strength",
		Shape:    Collection,
		Fields:   chartFields,
	},
	"education": {
		Family:   "education",
		Basepath: "/api/education",
		Shape:    Collection,
		Fields: []Field{
			{Name: "degree", Kind: KindText, Required: true},
			{Name: "school", Kind: KindText, Required: true},
			{Name: "year", Kind: KindText},
			{Name: "percentage", Kind: KindText},
		},
	},
	"experience": {
		Family:   "experience",
		Basepath: "/api/experience",
		Shape:    Collection,
		Fields: []Field{
			{Name: "position", Kind: KindText, Required: true},
			{Name: "company", Kind: KindText, Required: true},
			{Name: "years", Kind: KindText},
			{Name: "description", Kind: KindLongText},
		},
	},
	"competence": {
		Family:   "competence",
		Basepath: "/api/competence",
		Shape:    Collection,
		Fields: []Field{
			{Name: "title", Kind: KindText, Required: true},
			{Name: "image", Kind: KindFile},
		},
	},
	"contact": {
		Family:   "contact",
		Basepath: "/api/contact",
		Shape:    Collection,
		Fields: []Field{
			{Name: "heading", Kind: KindText, Required: true},
			{Name: "contactUrl", Kind: KindText, Required: true},
		},
	},
	"contact-details": {
		Family:   "contact-details",
		Basepath: "/api/contact/details",
		Shape:    Singleton,
		Fields: []Field{
			{Name: "phoneNumber", Kind: KindText, Required: true},
			{Name: "mainId", Kind: KindText, Required: true},
		},
	},
	"queries": {
		Family:   "queries",
		Basepath: "/api/queries",
		Shape:    Collection,
		// read/delete only from the dashboard; the public site creates them
		Fields: []Field{
			{Name: "name", Kind: KindText},
			{Name: "email", Kind: KindText},
			{Name: "inquiryType", Kind: KindText},
			{Name: "budget", Kind: KindText},
			{Name: "message", Kind: KindLongText},
		},
	},
}

var workFields = []Field{
	{Name: "title", Kind: KindText, Required: true},
	{Name: "description", Kind: KindLongText, Required: true},
	{Name: "mainImages", Kind: KindFile},
	{Name: "images", Kind: KindFiles},
	{Name: "videos", Kind: KindFiles},
}

var chartFields = []Field{
	{Name: "name", Kind: KindText, Required: true},
	{Name: "percentage", Kind: KindNumber, Required: true},
}

// FamilyNames returns the registry keys sorted, for help output.
func FamilyNames() []string {
	names := make([]string, 0, len(Families))
	for name := range Families {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
