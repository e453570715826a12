package handler

import (
	"html/template"
	"net/http"

	"github.com/labstack/echo/v4"
)

// PageHandler renders the site's HTML pages. The pages are deliberately
// thin: the admin panel talks to /api/customers with fetch, and the only
// server-side input is the optional analytics measurement id.
type PageHandler struct {
	measurementID string
	tmpl          *template.Template
}

func NewPageHandler(gaMeasurementID string) *PageHandler {
	return &PageHandler{
		measurementID: gaMeasurementID,
		tmpl:          template.Must(template.New("pages").Parse(pageTemplates)),
	}
}

type pageData struct {
	Title           string
	GAMeasurementID string
}

func (h *PageHandler) render(c echo.Context, name, title string) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(http.StatusOK)
	return h.tmpl.ExecuteTemplate(c.Response(), name, pageData{
		Title:           title,
		GAMeasurementID: h.measurementID,
	})
}

func (h *PageHandler) Home(c echo.Context) error {
	return h.render(c, "home", "Roosly")
}

func (h *PageHandler) Login(c echo.Context) error {
	return h.render(c, "login", "Sign in — Roosly")
}

func (h *PageHandler) Dashboard(c echo.Context) error {
	return h.render(c, "dashboard", "Dashboard — Roosly")
}

func (h *PageHandler) Customers(c echo.Context) error {
	return h.render(c, "customers", "Customers — Roosly")
}

const pageTemplates = `
{{define "head"}}
<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
{{if .GAMeasurementID}}
<script async src="https://www.googletagmanager.com/gtag/js?id={{.GAMeasurementID}}"></script>
<script>
  window.dataLayer = window.dataLayer || [];
  function gtag(){dataLayer.push(arguments);}
  gtag('js', new Date());
  gtag('config', '{{.GAMeasurementID}}');
</script>
{{end}}
</head>
<body>
{{end}}

{{define "foot"}}
</body>
</html>
{{end}}

{{define "home"}}
{{template "head" .}}
<h1>Roosly</h1>
<p>Websites, custom software, apps, and AI consultation for your business.</p>
<nav><a href="/login">Admin sign in</a></nav>
{{template "foot" .}}
{{end}}

{{define "login"}}
{{template "head" .}}
<h1>Sign in</h1>
<form id="login-form">
  <label>Email <input type="email" name="email" required></label>
  <label>Password <input type="password" name="password" required></label>
  <button type="submit">Sign in</button>
  <p id="login-error" hidden>Invalid credentials.</p>
</form>
<script>
document.getElementById('login-form').addEventListener('submit', async function (ev) {
  ev.preventDefault();
  const form = new FormData(ev.target);
  const res = await fetch('/api/login', {
    method: 'POST',
    headers: {'Content-Type': 'application/json'},
    body: JSON.stringify({email: form.get('email'), password: form.get('password')})
  });
  if (res.ok) {
    window.location.href = '/dashboard';
  } else {
    document.getElementById('login-error').hidden = false;
  }
});
</script>
{{template "foot" .}}
{{end}}

{{define "dashboard"}}
{{template "head" .}}
<h1>Dashboard</h1>
<nav>
  <a href="/customers">Manage customers</a>
  <button id="logout">Log out</button>
</nav>
<script>
document.getElementById('logout').addEventListener('click', async function () {
  await fetch('/api/logout', {method: 'POST'});
  window.location.href = '/login';
});
</script>
{{template "foot" .}}
{{end}}

{{define "customers"}}
{{template "head" .}}
<h1>Customers</h1>
<form id="customer-form">
  <input type="hidden" name="id">
  <label>Name <input name="name" required></label>
  <label>Email <input type="email" name="email" required></label>
  <button type="submit">Save</button>
  <p id="form-error" hidden></p>
</form>
<table>
  <thead><tr><th>ID</th><th>Name</th><th>Email</th><th></th></tr></thead>
  <tbody id="customer-rows"></tbody>
</table>
<script>
async function loadCustomers() {
  const res = await fetch('/api/customers');
  if (res.status === 401 || res.status === 403) { window.location.href = '/login'; return; }
  const customers = await res.json();
  const rows = document.getElementById('customer-rows');
  rows.innerHTML = '';
  for (const cu of customers) {
    const tr = document.createElement('tr');
    tr.innerHTML = '<td>' + cu.id + '</td><td></td><td></td>' +
      '<td><button data-edit="' + cu.id + '">Edit</button> ' +
      '<button data-del="' + cu.id + '">Delete</button></td>';
    tr.children[1].textContent = cu.name;
    tr.children[2].textContent = cu.email;
    rows.appendChild(tr);
  }
  rows.dataset.customers = JSON.stringify(customers);
}

document.getElementById('customer-form').addEventListener('submit', async function (ev) {
  ev.preventDefault();
  const form = new FormData(ev.target);
  const id = form.get('id');
  const payload = {name: form.get('name'), email: form.get('email')};
  let res;
  if (id) {
    payload.id = Number(id);
    res = await fetch('/api/customers', {method: 'PUT', headers: {'Content-Type': 'application/json'}, body: JSON.stringify(payload)});
  } else {
    res = await fetch('/api/customers', {method: 'POST', headers: {'Content-Type': 'application/json'}, body: JSON.stringify(payload)});
  }
  const errBox = document.getElementById('form-error');
  if (res.ok) {
    ev.target.reset();
    errBox.hidden = true;
    loadCustomers();
  } else {
    const body = await res.json();
    errBox.textContent = body.error || 'request failed';
    errBox.hidden = false;
  }
});

document.getElementById('customer-rows').addEventListener('click', async function (ev) {
  const edit = ev.target.dataset.edit;
  const del = ev.target.dataset.del;
  if (edit) {
    const customers = JSON.parse(this.dataset.customers || '[]');
    const cu = customers.find(function (x) { return String(x.id) === edit; });
    if (cu) {
      const form = document.getElementById('customer-form');
      form.elements.id.value = cu.id;
      form.elements.name.value = cu.name;
      form.elements.email.value = cu.email;
    }
  } else if (del) {
    const res = await fetch('/api/customers?id=' + del, {method: 'DELETE'});
    if (res.ok) loadCustomers();
  }
});

loadCustomers();
</script>
{{template "foot" .}}
{{end}}
`
