package useragent

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Generator synthesizes User-Agent strings from a catalog. It owns its
// randomness source so runs can be pinned with a fixed seed.
type Generator struct {
	rng    *rand.Rand
	logger *zap.Logger
}

// NewGenerator returns a Generator. A zero seed seeds from the wall
// clock; any other value pins the random sequence for reproducible runs.
func NewGenerator(seed int64, logger *zap.Logger) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{
		rng:    rand.New(rand.NewSource(seed)),
		logger: logger,
	}
}

// Generate picks one feasible browser, browser version, OS, and OS
// version uniformly at random and renders the family template for the
// combination. Entries without versions are skipped, not fatal; only a
// fully empty filtered set yields ErrEmptyData.
func (g *Generator) Generate(c *Catalog) (string, error) {
	if c == nil || len(c.Browsers) == 0 {
		return "", fmt.Errorf("%w: catalog has no browsers", ErrEmptyData)
	}

	feasible := make([]Browser, 0, len(c.Browsers))
	for _, b := range c.Browsers {
		if len(b.Versions) > 0 && len(b.OS) > 0 {
			feasible = append(feasible, b)
		}
	}
	if len(feasible) == 0 {
		return "", fmt.Errorf("%w: no feasible browser entries", ErrEmptyData)
	}

	browser := feasible[g.rng.Intn(len(feasible))]
	version := browser.Versions[g.rng.Intn(len(browser.Versions))]

	systems := make([]OperatingSystem, 0, len(browser.OS))
	for _, o := range browser.OS {
		if len(o.Versions) > 0 {
			systems = append(systems, o)
		}
	}
	if len(systems) == 0 {
		return "", fmt.Errorf("%w: no feasible OS entries for browser %q", ErrEmptyData, browser.Name)
	}

	system := systems[g.rng.Intn(len(systems))]
	systemVersion := system.Versions[g.rng.Intn(len(system.Versions))]

	ua := renderAgent(browser.Name, version, osString(system.Name, systemVersion))

	g.logger.Debug("Synthesized user agent",
		zap.String("browser", browser.Name),
		zap.String("browserVersion", version),
		zap.String("os", system.Name),
		zap.String("osVersion", systemVersion),
	)

	if !Valid(ua) {
		return "", fmt.Errorf("%w: %s", ErrInvalidAgent, ua)
	}
	return ua, nil
}

// osString renders the parenthesized platform descriptor. Mac OS versions
// are normalized to the underscore form real Chrome ships ("10_15_7"
// rather than "10.15.7").
func osString(name, version string) string {
	switch name {
	case "Windows":
		return fmt.Sprintf("Windows NT %s; Win64; x64", version)
	case "Mac OS":
		return fmt.Sprintf("Macintosh; Intel Mac OS X %s", strings.ReplaceAll(version, ".", "_"))
	case "Linux":
		return fmt.Sprintf("X11; Linux %s", version)
	default:
		return fmt.Sprintf("%s %s", name, version)
	}
}

// renderAgent fills in the per-family template. Unrecognized browser
// names fall back to a generic WebKit-style template.
func renderAgent(browser, version, platform string) string {
	switch browser {
	case "Chrome":
		return fmt.Sprintf("Mozilla/5.0 (%s) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/%s Safari/537.36", platform, version)
	case "Firefox":
		return fmt.Sprintf("Mozilla/5.0 (%s; rv:%s) Gecko/20100101 Firefox/%s", platform, version, version)
	case "Safari":
		return fmt.Sprintf("Mozilla/5.0 (%s) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/%s Safari/605.1.15", platform, version)
	case "Edge":
		return fmt.Sprintf("Mozilla/5.0 (%s) AppleWebKit/537.36 (KHTML, like Gecko) Edg/%s", platform, version)
	default:
		return fmt.Sprintf("Mozilla/5.0 (%s) AppleWebKit/537.36 (KHTML, like Gecko) %s/%s", platform, browser, version)
	}
}
