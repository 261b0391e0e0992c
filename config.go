package blowfish

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/gongzunpan/blowfish/crypto/engines"
)

// Config controls the optional ambient behavior of the high-level
// blowfish.New*WithConfig helpers; the plain New* constructors do not
// consult it. A missing config file is not an error: every field below
// defaults to matching the spec's own defaults (self-test off, CFB running
// byte-at-a-time).
//
// TOML format:
//
//	[selftest]
//	run_on_init = false
//
//	[cfb]
//	segment_bits = 8
type Config struct {
	SelfTest SelfTestConfig `toml:"selftest"`
	CFB      CFBConfig      `toml:"cfb"`
}

// SelfTestConfig controls whether engines.SelfTest runs automatically.
type SelfTestConfig struct {
	// RunOnInit runs engines.SelfTest whenever a blowfish.New*WithConfig
	// helper constructs a RoundEngine, failing construction on mismatch. Default:
	// false, matching the teacher's plain constructors which never run a
	// self-test implicitly.
	RunOnInit bool `toml:"run_on_init"`
}

// CFBConfig controls the default feedback width for CfbMode.
type CFBConfig struct {
	// SegmentBits is the feedback width in bits. Spec.md's CfbMode is
	// always byte-granular (8), but the field is carried so a future
	// segment width can be read from the same config surface without a
	// breaking change. Values other than 8 are rejected by Config.validate,
	// which the New*WithConfig helpers call; the spec defines no other
	// segment width.
	SegmentBits int `toml:"segment_bits"`
}

// DefaultConfig returns the configuration spec.md's defaults describe:
// self-test off, CFB segment width 8 bits.
func DefaultConfig() Config {
	return Config{
		SelfTest: SelfTestConfig{RunOnInit: false},
		CFB:      CFBConfig{SegmentBits: 8},
	}
}

// LoadConfig reads a TOML config file at path, overlaying it on
// DefaultConfig so that a partially-specified file still yields sane
// defaults for every omitted field. A missing file is not an error: it
// simply returns DefaultConfig().
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// validate rejects configuration values this module does not implement.
// CfbMode is always 8-bit-segment (byte-at-a-time) feedback; any other
// width is a config error rather than a silent downgrade.
func (cfg Config) validate() error {
	if cfg.CFB.SegmentBits != 8 {
		return fmt.Errorf("blowfish: unsupported cfb.segment_bits %d (only 8 is implemented)", cfg.CFB.SegmentBits)
	}
	return nil
}

// runSelfTestIfConfigured runs engines.SelfTest when cfg.SelfTest.RunOnInit
// is set, so that a misbuilt key schedule is caught at construction time
// rather than surfacing later as silently wrong ciphertext.
func runSelfTestIfConfigured(cfg Config) error {
	if !cfg.SelfTest.RunOnInit {
		return nil
	}
	return engines.SelfTest()
}
