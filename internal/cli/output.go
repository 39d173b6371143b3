package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	reqhttp "github.com/shapestone/shape-reqline/pkg/http"
)

// requestView is the printable form of a parsed request.
type requestView struct {
	Method    string        `json:"method" yaml:"method"`
	Extension bool          `json:"extension,omitempty" yaml:"extension,omitempty"`
	Target    string        `json:"target" yaml:"target"`
	Version   string        `json:"version,omitempty" yaml:"version,omitempty"`
	Headers   []headerView  `json:"headers" yaml:"headers"`
	Dropped   []droppedView `json:"dropped,omitempty" yaml:"dropped,omitempty"`

	req *reqhttp.Request
}

// headerView is the printable form of one header.
type headerView struct {
	Name   string `json:"name" yaml:"name"`
	Value  string `json:"value" yaml:"value"`
	Custom bool   `json:"custom,omitempty" yaml:"custom,omitempty"`
}

// droppedView is the printable form of a dropped header line.
type droppedView struct {
	Line   int    `json:"line" yaml:"line"`
	Text   string `json:"text" yaml:"text"`
	Reason string `json:"reason" yaml:"reason"`
}

func newRequestView(req *reqhttp.Request) *requestView {
	v := &requestView{
		Method:    req.Method.String(),
		Extension: req.Method.IsExtension(),
		Target:    req.Target,
		Version:   req.Version,
		Headers:   make([]headerView, len(req.Headers)),
		req:       req,
	}
	for i, h := range req.Headers {
		v.Headers[i] = *newHeaderView(h)
	}
	return v
}

func newHeaderView(h reqhttp.Header) *headerView {
	return &headerView{
		Name:   h.Name.String(),
		Value:  h.Value,
		Custom: h.Name.IsCustom(),
	}
}

func newDroppedViews(diags []reqhttp.Diagnostic) []droppedView {
	views := make([]droppedView, len(diags))
	for i, d := range diags {
		reason := d.Err.Error()
		var pe *reqhttp.ParseError
		if errors.As(d.Err, &pe) {
			reason = pe.Message
		}
		views[i] = droppedView{Line: d.Line, Text: d.Text, Reason: reason}
	}
	return views
}

func validFormat(format string) bool {
	switch format {
	case "text", "json", "yaml", "wire":
		return true
	}
	return false
}

// render writes v, a *requestView or *headerView, to w in the given format.
// The wire format leaves out dropped lines.
func render(w io.Writer, format string, v interface{}) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case "wire":
		switch view := v.(type) {
		case *requestView:
			return reqhttp.NewEncoder(w).Encode(view.req)
		case *headerView:
			_, err := fmt.Fprintf(w, "%s: %s\r\n", view.Name, view.Value)
			return err
		}
		return fmt.Errorf("cannot render %T as wire", v)
	case "text":
		switch view := v.(type) {
		case *requestView:
			writeRequestText(w, view)
			return nil
		case *headerView:
			writeHeaderText(w, view)
			return nil
		}
		return fmt.Errorf("cannot render %T as text", v)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func writeRequestText(w io.Writer, v *requestView) {
	bold := color.New(color.Bold).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()

	method := v.Method
	if v.Extension {
		method += " " + yellow("(extension)")
	}
	fmt.Fprintf(w, "%s  %s\n", bold("Method:"), method)
	fmt.Fprintf(w, "%s  %s\n", bold("Target:"), v.Target)
	if v.Version != "" {
		fmt.Fprintf(w, "%s %s\n", bold("Version:"), v.Version)
	}

	fmt.Fprintf(w, "%s\n", bold("Headers:"))
	for i := range v.Headers {
		fmt.Fprint(w, "  ")
		writeHeaderText(w, &v.Headers[i])
	}

	if len(v.Dropped) > 0 {
		fmt.Fprintf(w, "%s\n", bold("Dropped:"))
		for _, d := range v.Dropped {
			fmt.Fprintf(w, "  %s %s\n", red(fmt.Sprintf("line %d:", d.Line)), d.Reason)
		}
	}
}

func writeHeaderText(w io.Writer, h *headerView) {
	cyan := color.New(color.FgCyan).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()

	if h.Custom {
		fmt.Fprintf(w, "%s: %s %s\n", cyan(h.Name), h.Value, yellow("(custom)"))
		return
	}
	fmt.Fprintf(w, "%s: %s\n", cyan(h.Name), h.Value)
}
