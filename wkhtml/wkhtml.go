package wkhtml

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"syscall"
)

// PaperFormat describes the page geometry handed to the renderer.
// Margins and header spacing are millimeters.
type PaperFormat struct {
	PageSize      string // named size, e.g. "A4"
	Orientation   string // "Portrait" or "Landscape"
	MarginTop     float64
	MarginBottom  float64
	MarginLeft    float64
	MarginRight   float64
	DPI           int
	HeaderSpacing int
	Zoom          float64 // 0 keeps the renderer default
}

// DefaultPaperFormat is the European A4 geometry reports are designed
// against.
var DefaultPaperFormat = PaperFormat{
	PageSize:      "A4",
	Orientation:   "Portrait",
	MarginTop:     40,
	MarginBottom:  32,
	MarginLeft:    7,
	MarginRight:   7,
	DPI:           90,
	HeaderSpacing: 35,
}

// Job is one render request: the documents of a split report plus the
// per-report knobs that override the paper format.
type Job struct {
	Bodies          []string          // page bodies, one complete HTML document each
	Header, Footer  string            // repeated page header/footer documents, "" for none
	Landscape       bool              // force landscape regardless of paper orientation
	Paper           *PaperFormat      // nil means DefaultPaperFormat
	PaperArgs       map[string]string // report-level overrides: margins, dpi, header-spacing
	SetViewportSize bool              // fix the viewport for width-dependent reports
	CookieJar       []byte            // cookie jar contents for resolving internal links
}

// Runner invokes wkhtmltopdf. The zero value locates the binary through
// the search path, writes temp files to the system default directory and
// passes documents through unshaped.
type Runner struct {
	Bin     string              // path to the binary, "" means look it up
	Shape   func(string) string // applied to every document as it is written out
	WorkDir string              // directory for temp files, "" means the system default
}

// LocateBinary resolves the wkhtmltopdf binary through the search path.
func LocateBinary() (string, error) {
	return lookPath("wkhtmltopdf")
}

func lookPath(bin string) (string, error) {
	path, err := exec.LookPath(bin)
	if err != nil {
		return "", fmt.Errorf("%w (%v)", ErrBinaryMissing, err)
	}
	return path, nil
}

func (r *Runner) binary() (string, error) {
	if r.Bin != "" {
		return lookPath(r.Bin)
	}
	return LocateBinary()
}

// Render runs wkhtmltopdf over the job's documents and returns the PDF
// bytes. All inputs pass through the runner's Shape hook on their way to
// disk. Temp files are removed before Render returns, whatever the
// outcome.
func (r *Runner) Render(ctx context.Context, job *Job) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("wkhtml: %w", err)
	}
	bin, err := r.binary()
	if err != nil {
		return nil, err
	}
	files, err := r.writeInputs(job)
	defer files.cleanup()
	if err != nil {
		return nil, err
	}
	args := buildArgs(job, files)
	tracer().Debugf("rendering %d bodies via %s", len(files.bodies), bin)

	cmd := exec.CommandContext(ctx, bin, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := classify(ctx, cmd.Run(), stderr.String()); err != nil {
		return nil, err
	}
	pdf, err := os.ReadFile(files.out)
	if err != nil {
		return nil, fmt.Errorf("wkhtml: reading rendered document: %w", err)
	}
	return pdf, nil
}

// classify maps the outcome of a renderer run onto the error taxonomy:
// exit 0 and 1 are success, a terminating signal is a crash, any other
// exit carries the stderr tail.
func classify(ctx context.Context, err error, stderr string) error {
	if err == nil {
		if stderr != "" {
			tracer().Infof("wkhtmltopdf: %s", errTail(stderr))
		}
		return nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return fmt.Errorf("wkhtml: %w", ctxErr)
	}
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return fmt.Errorf("wkhtml: running wkhtmltopdf: %w", err)
	}
	tail := errTail(stderr)
	if status, ok := exitErr.Sys().(syscall.WaitStatus); ok && status.Signaled() {
		return &RunError{Signal: status.Signal(), Stderr: tail}
	}
	if exitErr.ExitCode() == 1 {
		tracer().Infof("wkhtmltopdf exited 1 (warnings): %s", tail)
		return nil
	}
	return &RunError{Code: exitErr.ExitCode(), Stderr: tail}
}

// errTail keeps the last part of the renderer's stderr, which is where
// wkhtmltopdf puts the reason it gave up.
func errTail(stderr string) string {
	const max = 1000
	stderr = strings.TrimSpace(stderr)
	if len(stderr) > max {
		stderr = stderr[len(stderr)-max:]
	}
	return stderr
}

// buildArgs assembles the renderer command line: paper geometry first,
// then the input documents, the output path last.
func buildArgs(job *Job, files *jobFiles) []string {
	paper := job.Paper
	if paper == nil {
		paper = &DefaultPaperFormat
	}
	var args []string
	if job.SetViewportSize {
		size := "1280x1024"
		if job.Landscape {
			size = "1024x1280"
		}
		args = append(args, "--viewport-size", size)
	}
	args = append(args, "--quiet")
	if paper.PageSize != "" {
		args = append(args, "--page-size", paper.PageSize)
	}
	args = append(args, "--margin-top", job.argOr("margin-top", num(paper.MarginTop)))
	args = append(args, "--margin-bottom", job.argOr("margin-bottom", num(paper.MarginBottom)))
	args = append(args, "--margin-left", job.argOr("margin-left", num(paper.MarginLeft)))
	args = append(args, "--margin-right", job.argOr("margin-right", num(paper.MarginRight)))
	switch {
	case job.Landscape:
		args = append(args, "--orientation", "landscape")
	case paper.Orientation != "":
		args = append(args, "--orientation", paper.Orientation)
	}
	if dpi := job.argOr("dpi", intNum(paper.DPI)); dpi != "" {
		args = append(args, "--dpi", dpi)
	}
	if spacing := job.argOr("header-spacing", intNum(paper.HeaderSpacing)); spacing != "" {
		args = append(args, "--header-spacing", spacing)
	}
	if paper.Zoom != 0 {
		args = append(args, "--zoom", num(paper.Zoom))
	}
	if files.cookieJar != "" {
		args = append(args, "--cookie-jar", files.cookieJar)
	}
	if files.header != "" {
		args = append(args, "--header-html", files.header)
	}
	if files.footer != "" {
		args = append(args, "--footer-html", files.footer)
	}
	args = append(args, files.bodies...)
	args = append(args, files.out)
	return args
}

// argOr returns the report's own override for a paper argument, the
// computed default otherwise.
func (job *Job) argOr(key, def string) string {
	if v, ok := job.PaperArgs[key]; ok && v != "" {
		return v
	}
	return def
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// intNum renders a positive int, "" for zero so the flag is dropped.
func intNum(v int) string {
	if v == 0 {
		return ""
	}
	return strconv.Itoa(v)
}

// jobFiles are the on-disk inputs and output of one renderer run.
type jobFiles struct {
	header, footer string
	cookieJar      string
	bodies         []string
	out            string
	dir            string
	all            []string
}

// writeInputs lays the job out on disk, shaping every document on the
// way. The returned jobFiles is non-nil even on error, so the caller can
// always clean up what was written.
func (r *Runner) writeInputs(job *Job) (*jobFiles, error) {
	files := &jobFiles{dir: r.WorkDir}
	shape := r.Shape
	if shape == nil {
		shape = func(s string) string { return s }
	}
	if len(job.CookieJar) > 0 {
		path, err := files.write("report.cookie_jar.tmp.*.txt", job.CookieJar)
		if err != nil {
			return files, err
		}
		files.cookieJar = path
	}
	if job.Header != "" {
		path, err := files.write("report.header.tmp.*.html", []byte(shape(job.Header)))
		if err != nil {
			return files, err
		}
		files.header = path
	}
	if job.Footer != "" {
		path, err := files.write("report.footer.tmp.*.html", []byte(shape(job.Footer)))
		if err != nil {
			return files, err
		}
		files.footer = path
	}
	for i, body := range job.Bodies {
		pattern := fmt.Sprintf("report.body.tmp.%d.*.html", i)
		path, err := files.write(pattern, []byte(shape(body)))
		if err != nil {
			return files, err
		}
		files.bodies = append(files.bodies, path)
	}
	out, err := files.write("report.tmp.*.pdf", nil)
	if err != nil {
		return files, err
	}
	files.out = out
	return files, nil
}

func (files *jobFiles) write(pattern string, content []byte) (string, error) {
	f, err := os.CreateTemp(files.dir, pattern)
	if err != nil {
		return "", fmt.Errorf("wkhtml: creating temp file: %w", err)
	}
	files.all = append(files.all, f.Name())
	_, err = f.Write(content)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return "", fmt.Errorf("wkhtml: writing %s: %w", f.Name(), err)
	}
	return f.Name(), nil
}

// cleanup removes the run's temp files. Files that cannot be removed are
// logged and left behind.
func (files *jobFiles) cleanup() {
	for _, path := range files.all {
		if err := os.Remove(path); err != nil {
			tracer().Errorf("cannot remove temp file %s: %v", path, err)
		}
	}
}
