package document

import (
	"bytes"
	"context"
	"embed"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"
	"time"

	"permit-quotation-service/internal/pkg/config"
	"permit-quotation-service/internal/pkg/errs"
	"permit-quotation-service/internal/usecase/commands"

	"github.com/shopspring/decimal"
)

//go:embed templates/*
var templateFS embed.FS

// PDFPrinter turns a rendered HTML page into PDF bytes.
type PDFPrinter interface {
	PrintPDF(ctx context.Context, html string) ([]byte, error)
}

type Renderer struct {
	cfg     config.DocumentConfig
	printer PDFPrinter
	html    *htmltemplate.Template
	text    *texttemplate.Template
}

// NewRenderer parses the embedded templates. A nil printer attaches the
// quotation as HTML.
func NewRenderer(cfg config.DocumentConfig, printer PDFPrinter) (*Renderer, error) {
	funcs := map[string]any{
		"money": func(d decimal.Decimal) string { return moneyString(cfg.CurrencySymbol, d) },
		"date":  func(t time.Time) string { return t.Format("January 2, 2006") },
		"inc":   func(i int) int { return i + 1 },
	}

	html, err := htmltemplate.New("html").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, errs.Wrap(err, "failed to parse html templates")
	}
	text, err := texttemplate.New("text").Funcs(funcs).ParseFS(templateFS, "templates/*.txt")
	if err != nil {
		return nil, errs.Wrap(err, "failed to parse text templates")
	}
	return &Renderer{cfg: cfg, printer: printer, html: html, text: text}, nil
}

type view struct {
	Doc            commands.QuotationDocument
	Reference      string
	CompanyName    string
	CompanyAddress string
}

func (r *Renderer) view(doc commands.QuotationDocument) view {
	return view{
		Doc:            doc,
		Reference:      Reference(doc),
		CompanyName:    r.cfg.CompanyName,
		CompanyAddress: r.cfg.CompanyAddress,
	}
}

// Reference is the short quotation number printed on documents.
func Reference(doc commands.QuotationDocument) string {
	return "Q-" + strings.ToUpper(doc.QuotationID.String()[:8])
}

func (r *Renderer) RenderQuotation(ctx context.Context, doc commands.QuotationDocument) (*commands.Attachment, error) {
	var buf bytes.Buffer
	if err := r.html.ExecuteTemplate(&buf, "quotation.html", r.view(doc)); err != nil {
		return nil, errs.Wrap(err, "failed to render quotation")
	}

	name := "quotation-" + strings.ToLower(Reference(doc))
	if r.printer == nil {
		return &commands.Attachment{
			Filename:    name + ".html",
			ContentType: "text/html; charset=utf-8",
			Data:        buf.Bytes(),
		}, nil
	}

	pdf, err := r.printer.PrintPDF(ctx, buf.String())
	if err != nil {
		return nil, errs.Wrap(err, "failed to print quotation pdf")
	}
	return &commands.Attachment{
		Filename:    name + ".pdf",
		ContentType: "application/pdf",
		Data:        pdf,
	}, nil
}

func (r *Renderer) RenderSendEmail(doc commands.QuotationDocument) (*commands.RenderedEmail, error) {
	return r.email("send_email", "Your quotation "+Reference(doc)+" from "+r.cfg.CompanyName, doc)
}

func (r *Renderer) RenderConfirmationEmail(doc commands.QuotationDocument) (*commands.RenderedEmail, error) {
	return r.email("confirmation_email", "We received your quotation request "+Reference(doc), doc)
}

func (r *Renderer) email(name, subject string, doc commands.QuotationDocument) (*commands.RenderedEmail, error) {
	v := r.view(doc)

	var html, text bytes.Buffer
	if err := r.html.ExecuteTemplate(&html, name+".html", v); err != nil {
		return nil, errs.Wrapf(err, "failed to render %s html", name)
	}
	if err := r.text.ExecuteTemplate(&text, name+".txt", v); err != nil {
		return nil, errs.Wrapf(err, "failed to render %s text", name)
	}
	return &commands.RenderedEmail{Subject: subject, HTML: html.String(), Text: text.String()}, nil
}

func moneyString(symbol string, amount decimal.Decimal) string {
	if symbol == "" {
		return formatCurrency(amount)
	}
	return symbol + " " + formatCurrency(amount)
}

// formatCurrency renders amount with two decimals and thousands separators.
func formatCurrency(amount decimal.Decimal) string {
	s := amount.StringFixed(2)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	for i, c := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	return sign + b.String() + "." + frac
}
