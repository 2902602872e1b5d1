package partials

import (
	"context"

	"devnsecure_site_go/middleware"
	"devnsecure_site_go/services"
	"devnsecure_site_go/templates/components"

	"github.com/a-h/templ"
)

// Modal routes, relative to the site root
const (
	ConsultationModalPath  = "/consultation/modal"
	ConsultationClosedPath = "/consultation/closed"
)

const modalTarget = "#consultation-modal"

// ConsultationStatusID holds form-level alerts. Responses that must not
// replace the whole form, such as a throttled submit, are swapped into it.
const ConsultationStatusID = "consultation-status"

// ConsultationModal renders the modal for the given form state. A closed form
// renders nothing so the modal root is emptied.
func ConsultationModal(snap services.FormSnapshot, csrfToken string) templ.Component {
	return components.Build(func(ctx context.Context, m *components.Markup) {
		if snap.State == services.FormClosed {
			return
		}

		m.Raw(`<div class="modal-backdrop" data-modal-backdrop></div>`)
		m.Raw(`<div class="modal" role="dialog" aria-modal="true" aria-labelledby="consultation-title">`)
		m.Raw(`<div class="modal-header"><div>`)
		m.Raw(`<h2 id="consultation-title">Start a Secure Build</h2>`)
		m.Raw(`<p>Share a few details. We'll respond with clarity, not pressure.</p>`)
		m.Raw(`</div>`)
		m.Component(ctx, closeButton("modal-close", "×", "Close consultation form"))
		m.Raw(`</div><div class="modal-body">`)

		if snap.State == services.FormSubmitted {
			m.Component(ctx, consultationSuccess())
		} else {
			m.Component(ctx, consultationForm(snap, csrfToken))
		}

		m.Raw(`</div></div>`)
	})
}

func closeButton(class, label, ariaLabel string) templ.Component {
	return components.Build(func(ctx context.Context, m *components.Markup) {
		m.Rawf(`<button type="button" class="%s" hx-get="%s" hx-target="%s" hx-swap="innerHTML"`, class, ConsultationClosedPath, modalTarget)
		m.Raw(components.Attr("aria-label", ariaLabel))
		m.Raw(`>`).Text(label).Raw(`</button>`)
	})
}

func consultationForm(snap services.FormSnapshot, csrfToken string) templ.Component {
	return components.Build(func(ctx context.Context, m *components.Markup) {
		m.Rawf(`<div id="%s" class="form-status">`, ConsultationStatusID)
		if snap.Error != "" {
			m.Raw(`<div class="alert alert-error" role="alert">`).Text(snap.Error).Raw(`</div>`)
		}
		m.Raw(`</div>`)

		m.Rawf(`<form class="consultation-form" hx-post="%s" hx-target="%s" hx-swap="innerHTML"`, ConsultationModalPath, modalTarget)
		m.Raw(` hx-disabled-elt="find input, find textarea, find button" novalidate>`)
		m.Rawf(`<input type="hidden" name="%s" value="%s">`, middleware.CSRFFormField, csrfToken)

		m.Component(ctx, field(inputField{
			name: services.FieldEmail, label: "Email Address", inputType: "email",
			placeholder: "you@company.com", value: snap.Email, err: snap.FieldErrors.Email,
			autocomplete: "email",
		}))
		m.Component(ctx, field(inputField{
			name: services.FieldWhatsApp, label: "WhatsApp Number", inputType: "tel",
			placeholder: "+91XXXXXXXXXX", value: snap.WhatsApp, err: snap.FieldErrors.WhatsApp,
			autocomplete: "tel",
		}))

		m.Rawf(`<div class="field"><label for="consultation-%s">Project Context (Optional)</label>`, services.FieldProjectContext)
		m.Rawf(`<textarea id="consultation-%s" name="%s" rows="3" placeholder="What are you building or improving? (optional)">`,
			services.FieldProjectContext, services.FieldProjectContext)
		m.Text(snap.ProjectContext).Raw(`</textarea></div>`)

		m.Raw(`<div class="form-actions"><button type="submit" class="btn btn-primary">`)
		m.Raw(`<span class="idle-label">Send Request</span><span class="htmx-indicator">Sending...</span>`)
		m.Raw(`</button></div></form>`)
	})
}

type inputField struct {
	name         string
	label        string
	inputType    string
	placeholder  string
	value        string
	err          string
	autocomplete string
}

func field(f inputField) templ.Component {
	return components.Build(func(ctx context.Context, m *components.Markup) {
		id := "consultation-" + f.name
		class := "field"
		if f.err != "" {
			class += " field-invalid"
		}
		m.Rawf(`<div class="%s" data-field="%s"><label for="%s">%s</label>`, class, f.name, id, f.label)
		m.Rawf(`<input id="%s" type="%s" name="%s" placeholder="%s" autocomplete="%s"`, id, f.inputType, f.name, f.placeholder, f.autocomplete)
		m.Raw(components.Attr("value", f.value))
		if f.err != "" {
			m.Rawf(` aria-invalid="true" aria-describedby="%s-error">`, id)
			m.Rawf(`<p id="%s-error" class="field-error">%s</p>`, id, f.err)
		} else {
			m.Raw(`>`)
		}
		m.Raw(`</div>`)
	})
}

func consultationSuccess() templ.Component {
	return components.Build(func(ctx context.Context, m *components.Markup) {
		m.Raw(`<div class="consultation-success">`)
		m.Raw(`<h3>Your request has been sent.</h3>`)
		m.Raw(`<p>Our engineers will reach out shortly. We've received your details and will respond with clarity, not pressure.</p>`)
		m.Component(ctx, closeButton("btn btn-secondary", "Close", ""))
		m.Raw(`</div>`)
	})
}
