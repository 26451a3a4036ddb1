package cli

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"bsp-dump/bsp"
	"bsp-dump/bsp/bdoc"
	"bsp-dump/pakfile"
	"bsp-dump/report"
	"bsp-dump/ui"
	"github.com/alexflint/go-arg"
	"github.com/dustin/go-humanize"
	"github.com/hako/durafmt"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type (
	Args struct {
		Dump        *DumpCmd        `arg:"subcommand:dump"`
		JSON        *JSONCmd        `arg:"subcommand:json"`
		Extract     *ExtractCmd     `arg:"subcommand:extract"`
		Interactive *InteractiveCmd `arg:"subcommand:interactive"`
		Verbose     bool            `arg:"-v,--verbose,env:BSP_DUMP_VERBOSE" help:"log every decoded lump"`
	}
	DumpCmd struct {
		From  string `arg:"required" help:"path to the map" placeholder:"map.bsp"`
		To    string `help:"path to the text report, next to the map by default" placeholder:"dump.txt"`
		Force bool   `help:"overwrite the destination file"`
	}
	JSONCmd struct {
		From  string `arg:"required" help:"path to the map" placeholder:"map.bsp"`
		To    string `arg:"required" help:"path to the JSON file" placeholder:"map.json"`
		Force bool   `help:"overwrite the destination file"`
	}
	ExtractCmd struct {
		From string `arg:"required" help:"path to the map" placeholder:"map.bsp"`
		To   string `arg:"required" help:"directory to extract the embedded archive into" placeholder:"DIR"`
	}
	InteractiveCmd struct {
		From string `help:"path to the map, pick one from the current directory when empty" placeholder:"map.bsp"`
	}

	ErrSourceMissing struct {
		Path string
	}
	ErrDestinationExists struct {
		Path string
	}
	ErrNotBSPFile struct {
		Path string
	}
	ErrNoPakFile struct {
		Path string
	}
)

const (
	SuffixDump = "-bsp_dump.txt"
	FileMode   = 0o644
)

func (r ErrSourceMissing) Error() string {
	return "source file does not exist: " + r.Path
}

func (r ErrDestinationExists) Error() string {
	return "destination file exists, use --force to overwrite it: " + r.Path
}

func (r ErrNotBSPFile) Error() string {
	return "not a BSP file: " + r.Path
}

func (r ErrNoPakFile) Error() string {
	return "map has no embedded archive: " + r.Path
}

func (Args) Description() string {
	des := strings.Join(
		[]string{
			"Dump the lumps of Source, GoldSrc and Quake map files.\n",
			"Reads VBSP (Source engine) and BSP version 29/30 files and writes",
			"a plain text report, an ordered JSON document, or the embedded pakfile.",
		},
		"\n",
	)
	des += "\n"
	return des
}

func CheckExistence(path string) bool {
	_, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return false
	}
	return err == nil
}

// DefaultDumpPath puts the report next to the map: maps/foo.bsp becomes
// maps/foo-bsp_dump.txt.
func DefaultDumpPath(from string) string {
	return strings.TrimSuffix(from, filepath.Ext(from)) + SuffixDump
}

func SetupLogging(verbose bool) {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
}

func checkDestination(to string, force bool) error {
	if CheckExistence(to) && !force {
		return ErrDestinationExists{Path: to}
	}
	return nil
}

func readMap(from string) (*bdoc.Document, error) {
	if !CheckExistence(from) {
		return nil, ErrSourceMissing{Path: from}
	}
	fileBytes, err := os.ReadFile(from)
	if err != nil {
		err := errors.Wrap(err, "cli.readMap error reading file")
		return nil, err
	}
	if !bsp.IsBSPFile(fileBytes) {
		return nil, ErrNotBSPFile{Path: from}
	}

	start := time.Now()
	document, err := bsp.Decode(fileBytes)
	if err != nil {
		err := errors.Wrapf(err, "cli.readMap error decoding %s", from)
		return nil, err
	}
	log.Info().
		Str("file", from).
		Str("size", humanize.Bytes(uint64(len(fileBytes)))).
		Str("dialect", string(document.Header.Dialect)).
		Int("lumps", len(document.Lumps)).
		Str("elapsed", durafmt.Parse(time.Since(start)).LimitFirstN(2).String()).
		Msg("decoded in")
	return document, nil
}

func StartDumping(cmd DumpCmd) error {
	to := cmd.To
	if to == "" {
		to = DefaultDumpPath(cmd.From)
	}
	if err := checkDestination(to, cmd.Force); err != nil {
		return err
	}
	document, err := readMap(cmd.From)
	if err != nil {
		return err
	}

	text, err := report.Render(filepath.Base(cmd.From), *document)
	if err != nil {
		return err
	}
	if err := os.WriteFile(to, []byte(text), FileMode); err != nil {
		err := errors.Wrap(err, "cli.StartDumping error writing report")
		return err
	}
	log.Info().Str("to", to).Str("size", humanize.Bytes(uint64(len(text)))).Msg("wrote report")
	return nil
}

func StartConverting(cmd JSONCmd) error {
	if err := checkDestination(cmd.To, cmd.Force); err != nil {
		return err
	}
	document, err := readMap(cmd.From)
	if err != nil {
		return err
	}

	decodedBytes, err := bsp.MarshalJSON(*document)
	if err != nil {
		return err
	}
	if err := os.WriteFile(cmd.To, decodedBytes, FileMode); err != nil {
		err := errors.Wrap(err, "cli.StartConverting error writing JSON")
		return err
	}
	log.Info().Str("to", cmd.To).Str("size", humanize.Bytes(uint64(len(decodedBytes)))).Msg("wrote JSON")
	return nil
}

func StartExtracting(cmd ExtractCmd) error {
	document, err := readMap(cmd.From)
	if err != nil {
		return err
	}
	blob, ok := document.PakFile()
	if !ok {
		return ErrNoPakFile{Path: cmd.From}
	}
	written, err := pakfile.Extract(blob, cmd.To)
	if err != nil {
		return err
	}
	log.Info().Str("to", cmd.To).Int("files", len(written)).Msg("extracted pakfile")
	return nil
}

func StartInteractive(cmd InteractiveCmd) error {
	from := cmd.From
	if from == "" {
		cwd, err := os.Getwd()
		if err != nil {
			err := errors.Wrap(err, "cli.StartInteractive error getting current working directory")
			return err
		}
		path, ok, err := ui.SelectFile(cwd)
		if err != nil || !ok {
			return err
		}
		from = path
	}
	document, err := readMap(from)
	if err != nil {
		return err
	}
	return ui.Start(filepath.Base(from), *document)
}

// Run executes the chosen subcommand. No subcommand means interactive mode.
func Run(args Args) error {
	SetupLogging(args.Verbose)
	switch {
	case args.Dump != nil:
		return StartDumping(*args.Dump)
	case args.JSON != nil:
		return StartConverting(*args.JSON)
	case args.Extract != nil:
		return StartExtracting(*args.Extract)
	case args.Interactive != nil:
		return StartInteractive(*args.Interactive)
	default:
		return StartInteractive(InteractiveCmd{})
	}
}

func Start() {
	args := Args{}
	arg.MustParse(&args)

	if err := Run(args); err != nil {
		log.Error().Err(err).Msg("bsp-dump failed")
		os.Exit(1)
	}
}
