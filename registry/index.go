package registry

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/netaddr/netaddr/internal/xlog"
)

//go:embed data/oui.txt
var bundledOUIText []byte

//go:embed data/iab.txt
var bundledIABText []byte

// legacyIABOUI and modernIABOUI are the two 24-bit OUIs the IEEE carves
// IAB sub-blocks out of.
const (
	legacyIABOUI uint32 = 0x0050C2
	modernIABOUI uint32 = 0x40D855
)

// index is the built, immutable, process-wide registry state.
type index struct {
	oui         map[uint32][]OUIEntry
	iab         map[uint64][]IABEntry
	ouiWarnings int
	iabWarnings int
}

type config struct {
	logger   xlog.Logger
	dataDir  string
	ouiR     io.Reader
	iabR     io.Reader
}

// Option configures Init.
type Option func(*config)

// WithLogger sets the logger used to report skipped/malformed lines.
func WithLogger(l xlog.Logger) Option {
	return func(c *config) { c.logger = l }
}

// WithDataDir overrides the bundled oui.txt/iab.txt with files read from
// dir (dir/oui.txt, dir/iab.txt).
func WithDataDir(dir string) Option {
	return func(c *config) { c.dataDir = dir }
}

// WithReader overrides the OUI and IAB source data with arbitrary
// readers, mainly for tests.
func WithReader(ouiR, iabR io.Reader) Option {
	return func(c *config) { c.ouiR = ouiR; c.iabR = iabR }
}

var (
	globalIndex     *index
	globalIndexOnce sync.Once
	globalIndexErr  error
	globalMu        sync.Mutex
)

// Init builds the process-wide index with the given options. Calling it
// more than once is a no-op after the first successful call — the
// registry is published once and is read-only thereafter. Call it before
// any OUI/IAB lookup to customize data sources or logging; if omitted,
// the first lookup builds the default (bundled-data) index lazily.
func Init(opts ...Option) error {
	globalMu.Lock()
	defer globalMu.Unlock()
	if globalIndex != nil {
		return nil
	}
	built, err := buildIndex(opts...)
	if err != nil {
		return err
	}
	globalIndex = built
	globalIndexOnce.Do(func() {})
	return nil
}

func defaultIndex() (*index, error) {
	globalIndexOnce.Do(func() {
		globalMu.Lock()
		defer globalMu.Unlock()
		if globalIndex != nil {
			return
		}
		globalIndex, globalIndexErr = buildIndex()
	})
	return globalIndex, globalIndexErr
}

func buildIndex(opts ...Option) (*index, error) {
	cfg := &config{logger: xlog.Default()}
	for _, opt := range opts {
		opt(cfg)
	}

	ouiR, iabR, err := resolveReaders(cfg)
	if err != nil {
		return nil, err
	}

	ouiMap, ouiWarn := parseOUIText(ouiR, cfg.logger)
	iabMap, iabWarn := parseIABText(iabR, cfg.logger)
	return &index{oui: ouiMap, iab: iabMap, ouiWarnings: ouiWarn, iabWarnings: iabWarn}, nil
}

func resolveReaders(cfg *config) (io.Reader, io.Reader, error) {
	if cfg.ouiR != nil && cfg.iabR != nil {
		return cfg.ouiR, cfg.iabR, nil
	}
	if cfg.dataDir != "" {
		ouiBytes, err := os.ReadFile(filepath.Join(cfg.dataDir, "oui.txt"))
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
		}
		iabBytes, err := os.ReadFile(filepath.Join(cfg.dataDir, "iab.txt"))
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
		}
		return bytes.NewReader(ouiBytes), bytes.NewReader(iabBytes), nil
	}
	return bytes.NewReader(bundledOUIText), bytes.NewReader(bundledIABText), nil
}

// Stats reports warning counts from building the process-wide index,
// mainly for test assertions.
type Stats struct {
	OUISkippedLines int
	IABSkippedLines int
}

// IndexStats returns the skipped-line counters of the process-wide index,
// building it with default options if it hasn't been built yet.
func IndexStats() (Stats, error) {
	idx, err := defaultIndex()
	if err != nil {
		return Stats{}, err
	}
	return Stats{OUISkippedLines: idx.ouiWarnings, IABSkippedLines: idx.iabWarnings}, nil
}
