package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/grovetools/twguide/errors"
	"github.com/grovetools/twguide/tui/theme"
)

// ErrorHandler turns structured errors into user-facing messages.
type ErrorHandler struct {
	Verbose bool
	Out     io.Writer
}

// NewErrorHandler creates an error handler writing to stderr.
func NewErrorHandler(verbose bool) *ErrorHandler {
	return &ErrorHandler{
		Verbose: verbose,
		Out:     os.Stderr,
	}
}

// Handle prints a message for err based on its code and returns err.
func (h *ErrorHandler) Handle(err error) error {
	if err == nil {
		return nil
	}
	t := theme.DefaultTheme
	fail := t.Error.Render(theme.IconError)
	e, structured := errors.As(err)
	detail := func(key string) interface{} {
		if !structured {
			return ""
		}
		return e.Details[key]
	}

	switch errors.GetCode(err) {
	case errors.ErrCodeConfigNotFound:
		fmt.Fprintf(h.Out, "%s Configuration file not found: %v\n", fail, detail("path"))
		fmt.Fprintln(h.Out, t.Muted.Render("Drop --config to use the discovered twguide.yml or the defaults."))

	case errors.ErrCodeConfigInvalid, errors.ErrCodeConfigValidation:
		fmt.Fprintf(h.Out, "%s %v\n", fail, err)
		fmt.Fprintln(h.Out, t.Muted.Render("Run 'twguide config schema' to see the accepted keys."))

	case errors.ErrCodeCatalogNotFound:
		fmt.Fprintf(h.Out, "%s Catalog file not found: %v\n", fail, detail("path"))
		fmt.Fprintln(h.Out, t.Muted.Render("Check the catalog key in twguide.yml or remove it to use the built-in catalog."))

	case errors.ErrCodeCatalogInvalid:
		fmt.Fprintf(h.Out, "%s Invalid catalog: %s\n", fail, messageOf(err))
		fmt.Fprintln(h.Out, t.Muted.Render("Run 'twguide export --format yaml' for an example of the expected layout."))

	case errors.ErrCodeUnsupportedFormat:
		fmt.Fprintf(h.Out, "%s %s\n", fail, messageOf(err))

	case errors.ErrCodeInvalidInput:
		fmt.Fprintf(h.Out, "%s Invalid input: %s\n", fail, messageOf(err))

	default:
		fmt.Fprintf(h.Out, "%s Error: %v\n", fail, err)
	}

	if h.Verbose && structured {
		fmt.Fprintf(h.Out, "\nError details:\n%s\n", e.ToJSON())
	}
	return err
}

func messageOf(err error) string {
	if e, ok := errors.As(err); ok {
		return e.Message
	}
	return err.Error()
}
