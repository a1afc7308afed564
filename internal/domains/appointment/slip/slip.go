package slip

//go:generate go run go.uber.org/mock/mockgen -source=./slip.go -destination=../mocks/slip_mock.go -package=mocks

import (
	"bytes"
	"context"
	"docai/infras/otel"
	"docai/internal/domains/appointment/model"
	"docai/shared/constant"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

const (
	FileName = "AppointmentSlip.pdf"
	Title    = "Appointment Slip"

	fontFamily = "Arial"
	lineHeight = 10
	margin     = 20
)

type Renderer interface {
	Render(ctx context.Context, appointment model.Appointment) ([]byte, error)
}

type Option func(*rendererImpl)

// WithoutCompression leaves page streams uncompressed so the text can be read
// back from the raw document.
func WithoutCompression() Option {
	return func(r *rendererImpl) {
		r.compress = false
	}
}

type rendererImpl struct {
	otel     otel.Otel
	compress bool
}

func New(otel otel.Otel, opts ...Option) Renderer {
	renderer := &rendererImpl{
		otel:     otel,
		compress: true,
	}

	for _, opt := range opts {
		opt(renderer)
	}

	return renderer
}

// Lines returns the labelled slip lines in print order.
func Lines(appointment model.Appointment) []string {
	return []string{
		"Doctor ID: " + appointment.DoctorID,
		"Date: " + appointment.Date.Format(constant.DayFormat),
		"Time: " + appointment.Time.String(),
		"Reason: " + appointment.Reason,
		"Contact: " + appointment.Contact,
	}
}

// Render draws a single A4 page with the title followed by the appointment lines.
func (r *rendererImpl) Render(ctx context.Context, appointment model.Appointment) (data []byte, err error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".slip.Render")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(r.compress)
	pdf.SetMargins(margin, margin, margin)
	pdf.AddPage()

	translate := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont(fontFamily, "B", 16)
	pdf.CellFormat(0, lineHeight, Title, "", 1, "C", false, 0, "")
	pdf.Ln(lineHeight / 2)

	pdf.SetFont(fontFamily, "", 12)

	for _, line := range Lines(appointment) {
		pdf.MultiCell(0, lineHeight, translate(line), "", "L", false)
	}

	var buf bytes.Buffer
	if err = pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render appointment slip: %w", err)
	}

	scope.SetAttribute("slip.size", buf.Len())

	return buf.Bytes(), nil
}
