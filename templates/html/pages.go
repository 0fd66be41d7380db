package templates

import (
	"html/template"
	"io"
)

// AppTitle is shown in the page header of every page
const AppTitle = "प्रकरण फ़ाइल प्रबंधन प्रणाली"

// ListRow is one summary row of the case table
type ListRow struct {
	CaseNumber    string
	Status        string
	BadgeClass    string
	FilingDate    string
	Section       string
	IncidentPlace string
	Complainant   string
	Officer       string
	EditURL       string
	DeleteURL     string
}

// ListPage holds data for the case list page
type ListPage struct {
	Title         string
	Headers       []string
	Rows          []ListRow
	ExportEnabled bool
	ExportURL     string
	NewURL        string
}

// FormField holds data for one input of the case form
type FormField struct {
	ID       string
	Label    string
	Kind     string
	Value    string
	Required bool
	Wide     bool
	Rows     int
	Error    string
	Options  []string
}

// FormGroup is one fieldset of the case form
type FormGroup struct {
	Title  string
	Fields []FormField
}

// FormPage holds data for the create and edit pages
type FormPage struct {
	Title       string
	SubmitLabel string
	CancelLabel string
	Action      string
	CancelURL   string
	Groups      []FormGroup
}

// ConfirmPage holds data for the delete confirmation page
type ConfirmPage struct {
	Prompt     string
	CaseNumber string
	Action     string
	CancelURL  string
}

// NoticePage holds data for a plain message page
type NoticePage struct {
	Title   string
	Message string
	BackURL string
}

const layoutHTML = `{{define "layout"}}<!DOCTYPE html>
<html lang="hi">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{.AppTitle}}</title>
  <style type="text/css">
    body { font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; margin: 0; background-color: #f1f5f9; color: #1e293b; }
    header { background-color: #1e40af; color: #ffffff; padding: 16px 32px; }
    header a { color: #ffffff; text-decoration: none; }
    main { max-width: 1200px; margin: 24px auto; padding: 0 16px; }
    .card { background-color: #ffffff; border-radius: 8px; box-shadow: 0 1px 3px rgba(0,0,0,0.1); padding: 24px; }
    .toolbar { display: flex; justify-content: space-between; align-items: center; margin-bottom: 24px; }
    .btn { display: inline-block; border: 0; border-radius: 8px; padding: 8px 16px; color: #ffffff; text-decoration: none; cursor: pointer; font-size: 14px; }
    .btn-primary { background-color: #2563eb; }
    .btn-export { background-color: #16a34a; }
    .btn-danger { background-color: #dc2626; }
    .btn-muted { background-color: #e2e8f0; color: #1e293b; }
    .btn[disabled] { background-color: #94a3b8; cursor: not-allowed; }
    table { width: 100%; border-collapse: collapse; }
    th { text-align: left; font-size: 12px; color: #64748b; padding: 12px; background-color: #f8fafc; white-space: nowrap; }
    td { padding: 12px; font-size: 14px; border-top: 1px solid #e2e8f0; }
    .badge { padding: 2px 8px; border-radius: 9999px; font-size: 12px; font-weight: 600; }
    .badge-pending { background-color: #fef9c3; color: #854d0e; }
    .badge-closed { background-color: #dcfce7; color: #166534; }
    .badge-investigation { background-color: #dbeafe; color: #1e40af; }
    .badge-unknown { background-color: #f1f5f9; color: #1e293b; }
    .empty { text-align: center; padding: 80px 0; }
    fieldset { border: 1px solid #e2e8f0; border-radius: 8px; margin-bottom: 24px; padding: 16px; }
    legend { font-weight: 600; padding: 0 8px; }
    .grid { display: grid; grid-template-columns: 1fr 1fr; gap: 16px; }
    .wide { grid-column: span 2; }
    label { display: block; font-size: 14px; margin-bottom: 4px; }
    input, select, textarea { width: 100%; box-sizing: border-box; padding: 8px; border: 1px solid #cbd5e1; border-radius: 6px; }
    .invalid { border-color: #dc2626; }
    .required { color: #dc2626; }
    .error { color: #dc2626; font-size: 12px; margin-top: 4px; }
    .actions { display: flex; justify-content: flex-end; gap: 12px; }
  </style>
</head>
<body>
  <header><a href="/"><h1>{{.AppTitle}}</h1></a></header>
  <main>{{template "content" .Page}}</main>
</body>
</html>{{end}}`

const listHTML = `{{define "content"}}
<div class="toolbar">
  <h2>{{.Title}}</h2>
  <div>
    {{if .ExportEnabled}}<a class="btn btn-export" href="{{.ExportURL}}">एक्सेल में निर्यात करें</a>{{else}}<button class="btn btn-export" disabled>एक्सेल में निर्यात करें</button>{{end}}
    <a class="btn btn-primary" href="{{.NewURL}}">नया प्रकरण जोड़ें</a>
  </div>
</div>
{{if .Rows}}
<div class="card">
  <table>
    <thead><tr>{{range .Headers}}<th scope="col">{{.}}</th>{{end}}</tr></thead>
    <tbody>
    {{range .Rows}}
      <tr>
        <td>{{.CaseNumber}}</td>
        <td><span class="badge {{.BadgeClass}}">{{.Status}}</span></td>
        <td>{{.FilingDate}}</td>
        <td>{{.Section}}</td>
        <td>{{.IncidentPlace}}</td>
        <td>{{.Complainant}}</td>
        <td>{{.Officer}}</td>
        <td><a href="{{.EditURL}}">संपादित करें</a> <a href="{{.DeleteURL}}">हटाएं</a></td>
      </tr>
    {{end}}
    </tbody>
  </table>
</div>
{{else}}
<div class="card empty">
  <h3>कोई प्रकरण नहीं मिला</h3>
  <p>शुरू करने के लिए एक नया प्रकरण जोड़ें।</p>
</div>
{{end}}
{{end}}`

const formHTML = `{{define "content"}}
<div class="card">
  <h2>{{.Title}}</h2>
  <form method="post" action="{{.Action}}" novalidate>
  {{range .Groups}}
    <fieldset>
      <legend>{{.Title}}</legend>
      <div class="grid">
      {{range .Fields}}
        <div{{if .Wide}} class="wide"{{end}}>
          <label for="{{.ID}}">{{.Label}}{{if .Required}} <span class="required">*</span>{{end}}</label>
          {{if eq .Kind "select"}}
          <select id="{{.ID}}" name="{{.ID}}"{{if .Error}} class="invalid"{{end}}>
            {{$v := .Value}}{{range .Options}}<option value="{{.}}"{{if eq . $v}} selected{{end}}>{{.}}</option>{{end}}
          </select>
          {{else if eq .Kind "textarea"}}
          <textarea id="{{.ID}}" name="{{.ID}}" rows="{{.Rows}}"{{if .Error}} class="invalid"{{end}}>{{.Value}}</textarea>
          {{else}}
          <input id="{{.ID}}" name="{{.ID}}" type="{{.Kind}}" value="{{.Value}}"{{if .Error}} class="invalid"{{end}}>
          {{end}}
          {{if .Error}}<p class="error">{{.Error}}</p>{{end}}
        </div>
      {{end}}
      </div>
    </fieldset>
  {{end}}
    <div class="actions">
      <a class="btn btn-muted" href="{{.CancelURL}}">{{.CancelLabel}}</a>
      <button class="btn btn-primary" type="submit">{{.SubmitLabel}}</button>
    </div>
  </form>
</div>
{{end}}`

const confirmHTML = `{{define "content"}}
<div class="card">
  <h2>{{.Prompt}}</h2>
  {{if .CaseNumber}}<p>प्रकरण संख्या: {{.CaseNumber}}</p>{{end}}
  <form method="post" action="{{.Action}}" class="actions">
    <a class="btn btn-muted" href="{{.CancelURL}}">रद्द करें</a>
    <button class="btn btn-danger" type="submit" name="confirm" value="yes">हटाएं</button>
  </form>
</div>
{{end}}`

const noticeHTML = `{{define "content"}}
<div class="card empty">
  <h3>{{.Title}}</h3>
  <p>{{.Message}}</p>
  <a class="btn btn-primary" href="{{.BackURL}}">वापस जाएं</a>
</div>
{{end}}`

var (
	layout      = template.Must(template.New("layout").Parse(layoutHTML))
	listPage    = page(listHTML)
	formPage    = page(formHTML)
	confirmPage = page(confirmHTML)
	noticePage  = page(noticeHTML)
)

func page(content string) *template.Template {
	return template.Must(template.Must(layout.Clone()).Parse(content))
}

type frame struct {
	AppTitle string
	Page     interface{}
}

func render(w io.Writer, t *template.Template, data interface{}) error {
	return t.ExecuteTemplate(w, "layout", frame{AppTitle: AppTitle, Page: data})
}

// RenderList writes the case list page
func RenderList(w io.Writer, p ListPage) error { return render(w, listPage, p) }

// RenderForm writes the create or edit page
func RenderForm(w io.Writer, p FormPage) error { return render(w, formPage, p) }

// RenderConfirm writes the delete confirmation page
func RenderConfirm(w io.Writer, p ConfirmPage) error { return render(w, confirmPage, p) }

// RenderNotice writes a plain message page
func RenderNotice(w io.Writer, p NoticePage) error { return render(w, noticePage, p) }
