package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	toggler "github.com/aikruger/transclusion-toggler"
	"github.com/aikruger/transclusion-toggler/internal/tui"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"golang.org/x/term"
	"pkt.systems/version"
)

const modulePath = "github.com/aikruger/transclusion-toggler"

func init() {
	version.SetDefaultModule(modulePath)
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type mode int

const (
	modeNone mode = iota
	modeAll
	modeCursor
	modeSelect
	modeList
	modeInteractive
)

type cliFlags struct {
	all             bool
	cursor          string
	selection       string
	list            bool
	interactive     bool
	output          string
	write           bool
	configPath      string
	printConfig     bool
	listCommands    bool
	showVersion     bool
	skipFrontMatter bool
	logLevel        string
	logFormat       string
	colorFlag       string
	width           int
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var f cliFlags
	flags := pflag.NewFlagSet("embedtoggle", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.BoolVarP(&f.all, "all", "a", false, "Toggle every link in the document")
	flags.StringVarP(&f.cursor, "cursor", "c", "", "Toggle the link at or nearest to LINE:CH (zero-based, CH in bytes)")
	flags.StringVarP(&f.selection, "select", "s", "", "Toggle links selected between ANCHOR and HEAD, as LINE:CH,LINE:CH")
	flags.BoolVarP(&f.list, "list", "l", false, "List links instead of toggling")
	flags.BoolVarP(&f.interactive, "interactive", "i", false, "Open the document in the terminal editor")
	flags.StringVarP(&f.output, "output", "o", "", "Output file instead of stdout")
	flags.BoolVarP(&f.write, "write", "w", false, "Rewrite the input file in place")
	flags.StringVar(&f.configPath, "config", "", "Config file (default $XDG_CONFIG_HOME/embedtoggle/config.toml)")
	flags.BoolVar(&f.printConfig, "print-config", false, "Print the effective settings as TOML")
	flags.BoolVar(&f.listCommands, "list-commands", false, "List available commands")
	flags.BoolVarP(&f.showVersion, "version", "V", false, "Print version")
	flags.BoolVar(&f.skipFrontMatter, "skip-front-matter", false, "Ignore links inside leading front matter")
	flags.StringVar(&f.logLevel, "log-level", "", "Log level: trace|debug|info|warn|error")
	flags.StringVar(&f.logFormat, "log-format", "", "Log format: console|json")
	flags.StringVar(&f.colorFlag, "color", "auto", "Colorize --list output: auto|on|off")
	flags.IntVar(&f.width, "width", 0, "Width for --list output (0 uses terminal width if available)")

	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintln(stderr, version.Module(), version.Current())
		fmt.Fprintf(stderr, "Usage: embedtoggle [flags] [input]\n")
		fmt.Fprintln(stderr, "\nToggles [[link]] <-> ![[link]]. If no input is provided, the document is read from stdin.")
		fmt.Fprintln(stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}

	if f.showVersion {
		fmt.Fprintln(stdout, version.Module(), version.Current())
		return 0
	}
	if f.listCommands {
		printCommands(stdout)
		return 0
	}

	cfg, err := loadConfig(f.configPath, flags.Changed("config"))
	if err != nil {
		fmt.Fprintf(stderr, "load config: %v\n", err)
		return 1
	}
	cfg.applyFlags(flags, f)
	if f.printConfig {
		if err := toml.NewEncoder(stdout).Encode(cfg); err != nil {
			fmt.Fprintf(stderr, "print config: %v\n", err)
			return 1
		}
		return 0
	}

	log, err := newLogger(cfg, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "invalid logging settings: %v\n", err)
		return 2
	}

	m, err := resolveMode(f)
	if err != nil {
		fmt.Fprintf(stderr, "%v\n\n", err)
		flags.Usage()
		return 2
	}

	rest := flags.Args()
	if len(rest) > 1 {
		fmt.Fprintf(stderr, "expected at most one input, got %d\n", len(rest))
		return 2
	}
	input := ""
	if len(rest) == 1 {
		input = rest[0]
	}
	if f.write && localPath(input) == "" {
		fmt.Fprintln(stderr, "--write requires a local file input")
		return 2
	}

	buf, err := readInput(input, stdin)
	if err != nil {
		fmt.Fprintf(stderr, "open input: %v\n", err)
		return 1
	}

	switch m {
	case modeList:
		tg := toggler.New(toggler.WithLogger(log), toggler.WithSkipFrontMatter(cfg.SkipFrontMatter))
		if err := listTokens(tg, buf, stdout, f); err != nil {
			fmt.Fprintf(stderr, "list: %v\n", err)
			return 1
		}
		return 0
	case modeInteractive:
		tg := toggler.New(toggler.WithSkipFrontMatter(cfg.SkipFrontMatter))
		if err := runInteractive(tg, buf, input, f.output); err != nil {
			fmt.Fprintf(stderr, "interactive: %v\n", err)
			return 1
		}
		return 0
	}

	tg := toggler.New(toggler.WithLogger(log), toggler.WithSkipFrontMatter(cfg.SkipFrontMatter))
	var res toggler.Result
	switch m {
	case modeAll:
		res = tg.ToggleAll(buf)
	case modeCursor:
		pos, err := parsePosition(f.cursor)
		if err != nil {
			fmt.Fprintf(stderr, "invalid --cursor %q: %v\n", f.cursor, err)
			return 2
		}
		buf.SetCursor(pos)
		res = tg.ToggleCurrent(buf)
	case modeSelect:
		anchor, head, err := parseSelection(f.selection)
		if err != nil {
			fmt.Fprintf(stderr, "invalid --select %q: %v\n", f.selection, err)
			return 2
		}
		buf.SetSelection(anchor, head)
		res = tg.ToggleCurrent(buf)
	}
	log.Info().Str("command", res.Command).Int("toggled", res.Toggled()).Msg("done")

	outPath := f.output
	if f.write {
		outPath = localPath(input)
	}
	if err := writeDocument(outPath, buf.GetValue(), stdout); err != nil {
		fmt.Fprintf(stderr, "write output: %v\n", err)
		return 1
	}
	return 0
}

func resolveMode(f cliFlags) (mode, error) {
	var modes []mode
	if f.all {
		modes = append(modes, modeAll)
	}
	if f.cursor != "" {
		modes = append(modes, modeCursor)
	}
	if f.selection != "" {
		modes = append(modes, modeSelect)
	}
	if f.list {
		modes = append(modes, modeList)
	}
	if f.interactive {
		modes = append(modes, modeInteractive)
	}
	switch len(modes) {
	case 0:
		return modeNone, fmt.Errorf("one of --all, --cursor, --select, --list or --interactive is required")
	case 1:
		return modes[0], nil
	default:
		return modeNone, fmt.Errorf("--all, --cursor, --select, --list and --interactive are mutually exclusive")
	}
}

func printCommands(w io.Writer) {
	for _, id := range toggler.AvailableCommands() {
		cmd, _ := toggler.CommandByID(id)
		fmt.Fprintf(w, "%s\t%s\n", cmd.ID, cmd.Name)
	}
}

func listTokens(tg *toggler.Toggler, buf *toggler.Buffer, w io.Writer, f cliFlags) error {
	useColor, err := resolveColor(f.colorFlag, w)
	if err != nil {
		return fmt.Errorf("invalid --color %q: %w", f.colorFlag, err)
	}
	return toggler.List(toggler.ListRequest{
		Tokens: tg.Scan(buf),
		Writer: w,
		Width:  resolveWidth(f.width, w),
		Color:  useColor,
	})
}

func runInteractive(tg *toggler.Toggler, buf *toggler.Buffer, input, output string) error {
	target := output
	if target == "" {
		target = localPath(input)
	}
	var save func(string) error
	if target != "" {
		save = func(text string) error {
			return writeDocument(target, text, nil)
		}
	}
	title := target
	if title == "" {
		title = "[stdin]"
	}
	return tui.Run(context.Background(), tui.Config{
		Buffer:  buf,
		Toggler: tg,
		Title:   title,
		Save:    save,
	})
}

// parsePosition parses LINE:CH.
func parsePosition(raw string) (toggler.Position, error) {
	lineStr, chStr, ok := strings.Cut(strings.TrimSpace(raw), ":")
	if !ok {
		return toggler.Position{}, fmt.Errorf("expected LINE:CH")
	}
	line, err := strconv.Atoi(strings.TrimSpace(lineStr))
	if err != nil || line < 0 {
		return toggler.Position{}, fmt.Errorf("invalid line %q", lineStr)
	}
	ch, err := strconv.Atoi(strings.TrimSpace(chStr))
	if err != nil || ch < 0 {
		return toggler.Position{}, fmt.Errorf("invalid offset %q", chStr)
	}
	return toggler.Position{Line: line, Ch: ch}, nil
}

// parseSelection parses ANCHOR,HEAD where each end is LINE:CH.
func parseSelection(raw string) (toggler.Position, toggler.Position, error) {
	a, h, ok := strings.Cut(raw, ",")
	if !ok {
		return toggler.Position{}, toggler.Position{}, fmt.Errorf("expected LINE:CH,LINE:CH")
	}
	anchor, err := parsePosition(a)
	if err != nil {
		return toggler.Position{}, toggler.Position{}, fmt.Errorf("anchor: %w", err)
	}
	head, err := parsePosition(h)
	if err != nil {
		return toggler.Position{}, toggler.Position{}, fmt.Errorf("head: %w", err)
	}
	return anchor, head, nil
}

func resolveColor(mode string, w io.Writer) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", "auto":
		return isTerminal(w) && os.Getenv("NO_COLOR") == "", nil
	case "on", "true", "1", "yes":
		return true, nil
	case "off", "false", "0", "no":
		return false, nil
	default:
		return false, fmt.Errorf("expected auto|on|off")
	}
}

func resolveWidth(width int, w io.Writer) int {
	if width > 0 {
		return width
	}
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	if tw, _, err := term.GetSize(int(f.Fd())); err == nil && tw > 0 {
		return tw
	}
	return 0
}

func readInput(raw string, stdin io.Reader) (*toggler.Buffer, error) {
	reader, closer, err := openInput(raw, stdin)
	if err != nil {
		return nil, err
	}
	if closer != nil {
		defer func() { _ = closer.Close() }()
	}
	return toggler.ReadBuffer(reader)
}

func openInput(raw string, stdin io.Reader) (io.Reader, io.Closer, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "-" {
		return stdin, nil, nil
	}
	u, err := url.Parse(raw)
	if err == nil && u.Scheme != "" {
		switch strings.ToLower(u.Scheme) {
		case "http", "https":
			return openURL(raw)
		case "file":
			return openFile(fileURLPath(u))
		}
	}
	return openFile(raw)
}

// localPath returns the file system path behind an input argument, or ""
// when the input is stdin or remote.
func localPath(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "-" {
		return ""
	}
	u, err := url.Parse(raw)
	if err == nil && u.Scheme != "" {
		switch strings.ToLower(u.Scheme) {
		case "http", "https":
			return ""
		case "file":
			return normalizePath(fileURLPath(u))
		}
	}
	return normalizePath(raw)
}

func fileURLPath(u *url.URL) string {
	path := u.Path
	if path == "" {
		path = u.Host
	}
	if unescaped, err := url.PathUnescape(path); err == nil {
		path = unescaped
	}
	return path
}

func openURL(raw string) (io.Reader, io.Closer, error) {
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, raw, nil)
	if err != nil {
		return nil, nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_ = resp.Body.Close()
		return nil, nil, fmt.Errorf("http %s: %s", raw, resp.Status)
	}
	return resp.Body, resp.Body, nil
}

func openFile(path string) (io.Reader, io.Closer, error) {
	clean := normalizePath(path)
	f, err := os.Open(clean)
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

// writeDocument writes text to path, or to stdout when path is empty. An
// existing file keeps its permissions.
func writeDocument(path, text string, stdout io.Writer) error {
	if strings.TrimSpace(path) == "" {
		if stdout == nil {
			return fmt.Errorf("no output path")
		}
		_, err := io.WriteString(stdout, text)
		return err
	}
	clean := normalizePath(path)
	perm := os.FileMode(0o644)
	if info, err := os.Stat(clean); err == nil {
		perm = info.Mode().Perm()
	}
	dir := filepath.Dir(clean)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(clean, []byte(text), perm)
}

func normalizePath(path string) string {
	if strings.HasPrefix(path, "~/") || path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			if path == "~" {
				path = home
			} else {
				path = filepath.Join(home, path[2:])
			}
		}
	}
	abs, err := filepath.Abs(path)
	if err == nil {
		return abs
	}
	return path
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

func newLogger(cfg fileConfig, w io.Writer) (zerolog.Logger, error) {
	levelName := strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	if levelName == "" {
		levelName = defaultLogLevel
	}
	level, err := zerolog.ParseLevel(levelName)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("log level: %w", err)
	}
	var out io.Writer
	switch strings.ToLower(strings.TrimSpace(cfg.LogFormat)) {
	case "", "console":
		out = zerolog.ConsoleWriter{Out: w, NoColor: !isTerminal(w)}
	case "json":
		out = w
	default:
		return zerolog.Nop(), fmt.Errorf("log format %q: expected console|json", cfg.LogFormat)
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger(), nil
}
