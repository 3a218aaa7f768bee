package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/myatype/mmshape/reshape"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/npillmayer/uax/grapheme"
	"github.com/pterm/pterm"
	"golang.org/x/term"
)

// tracer traces with key 'mmshape.cli'
func tracer() tracing.Trace {
	return tracing.Select("mmshape.cli")
}

// traceKeys are the namespaces the -trace flag controls.
var traceKeys = []string{
	"mmshape",
	"mmshape.cli",
	"mmshape.reshape",
	"mmshape.glyph",
	"mmshape.pages",
	"mmshape.render",
}

func main() {
	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter": "go",
	}
	for _, key := range traceKeys {
		conf["trace."+key] = "Info"
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	rules := flag.String("rules", "standard", "Rule lineage [standard|legacy]")
	flag.Parse()
	setTraceLevel(tracing.LevelError) // will set the requested level later
	if interactive {
		pterm.Info.Println("Welcome to the Myanmar reshaping CLI")
	}
	//
	// set up REPL
	repl, err := readline.New("mm > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	grapheme.SetupGraphemeClasses() // inspect segments text into grapheme clusters
	intp := &Intp{repl: repl, interactive: interactive}
	if err := intp.selectRules(*rules); err != nil {
		tracer().Errorf(err.Error())
		os.Exit(4)
	}
	//
	// start receiving commands
	if interactive {
		pterm.Info.Println("Quit with <ctrl>D")
	}
	switch *tlevel {
	case "Debug":
		setTraceLevel(tracing.LevelDebug)
	case "Info":
		setTraceLevel(tracing.LevelInfo)
	case "Error":
		setTraceLevel(tracing.LevelError)
	default:
		tracer().Errorf("Invalid trace level: %s", *tlevel)
		os.Exit(5)
	}
	tracer().Infof("Trace level is %s", *tlevel)
	intp.REPL() // go into interactive mode
}

func setTraceLevel(level tracing.TraceLevel) {
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(level)
	}
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	repl        *readline.Instance
	shaper      *reshape.Shaper
	interactive bool
}

func (intp *Intp) String() string {
	if intp == nil || intp.shaper == nil {
		return "()"
	}
	return fmt.Sprintf("( rules=%s )", intp.shaper.Rules())
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		if intp.interactive {
			pterm.Println(intp.String())
		}
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		op, err := intp.parseCommand(line)
		if err != nil {
			pterm.Error.Println(err)
			continue
		}
		err, quit := intp.execute(op)
		if err != nil {
			pterm.Error.Println(err)
			continue
		}
		if quit {
			break
		}
	}
	if intp.interactive {
		pterm.Info.Println("Good bye!")
	}
}

type Op struct {
	code int
	arg  string
}

const (
	QUIT int = iota
	HELP
	RESHAPE
	INSPECT
	RULES
	GLYPHS
	FONT
)

var opMap = map[string]int{
	"quit":    QUIT,
	"help":    HELP,
	"reshape": RESHAPE,
	"inspect": INSPECT,
	"rules":   RULES,
	"glyphs":  GLYPHS,
	"font":    FONT,
}

var opNames = []string{
	"quit",
	"help",
	"reshape",
	"inspect",
	"rules",
	"glyphs",
	"font",
}

func (intp *Intp) parseCommand(line string) (*Op, error) {
	verb, arg := splitArg(line)
	code, ok := opMap[strings.ToLower(verb)]
	if !ok {
		return nil, fmt.Errorf("unknown command %q, try 'help'", verb)
	}
	tracer().Debugf("parsed command: %s %q", opNames[code], arg)
	return &Op{code: code, arg: arg}, nil
}

// splitArg cuts the first space-separated token off a line. Everything
// after the token stays one argument; command arguments may contain
// spaces.
func splitArg(line string) (string, string) {
	parts := strings.SplitN(line, " ", 2)
	if len(parts) < 2 {
		return parts[0], ""
	}
	return parts[0], strings.TrimSpace(parts[1])
}

var commandFn = map[int]func(*Intp, *Op) (error, bool){
	QUIT:    quitOp,
	HELP:    helpOp,
	RESHAPE: reshapeOp,
	INSPECT: inspectOp,
	RULES:   rulesOp,
	GLYPHS:  glyphsOp,
	FONT:    fontOp,
}

func (intp *Intp) execute(op *Op) (err error, stop bool) {
	f, ok := commandFn[op.code]
	if !ok {
		pterm.Error.Printf("unknown command code: %d\n", op.code)
		return nil, false
	}
	return f(intp, op)
}

func quitOp(intp *Intp, op *Op) (error, bool) {
	return nil, true
}

func rulesOp(intp *Intp, op *Op) (error, bool) {
	if arg, ok := op.hasArg(); ok {
		if err := intp.selectRules(arg); err != nil {
			return err, false
		}
	}
	pterm.Printf("active rules: %s\n", intp.shaper.Rules())
	return nil, false
}

// selectRules swaps the interpreter's shaper for the named rule lineage.
func (intp *Intp) selectRules(name string) error {
	switch strings.ToLower(name) {
	case "standard":
		intp.shaper = reshape.New(nil)
	case "legacy":
		intp.shaper = reshape.New(&reshape.Options{Rules: reshape.LegacyRules})
	default:
		return fmt.Errorf("unknown rule lineage %q, want standard or legacy", name)
	}
	tracer().Infof("using %s rules", intp.shaper.Rules())
	return nil
}

func (op *Op) hasArg() (string, bool) {
	if op.arg == "" {
		return "", false
	}
	return op.arg, true
}
