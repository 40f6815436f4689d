package browser

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/input"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/launcher/flags"
	"github.com/go-rod/rod/lib/proto"
	"github.com/go-rod/stealth"
	"github.com/ysmood/gson"

	"github.com/sparktsao/WebSearchPup/config"
	"github.com/sparktsao/WebSearchPup/models"
)

// Browser owns the launched browser process. One Browser serves many
// sessions; each session owns exactly one page.
type Browser struct {
	browser *rod.Browser
	cfg     config.BrowserConfig
}

// New launches a headless browser and connects to it.
func New(cfg config.BrowserConfig) (*Browser, error) {
	l := launcher.New().
		Headless(cfg.Headless).
		NoSandbox(cfg.NoSandbox)

	if cfg.BrowserBin != "" {
		l = l.Bin(cfg.BrowserBin)
	}
	if cfg.DefaultProxy != "" {
		l = l.Proxy(cfg.DefaultProxy)
	}

	l.Set(flags.Flag("disable-blink-features"), "AutomationControlled")
	l.Delete(flags.Flag("enable-automation"))
	l.Set(flags.Flag("disable-dev-shm-usage"))
	l.Set(flags.Flag("disable-extensions"))
	l.Set(flags.Flag("disable-popup-blocking"))
	l.Set(flags.Flag("disable-default-apps"))
	l.Set(flags.Flag("no-first-run"))

	controlURL, err := l.Launch()
	if err != nil {
		return nil, models.NewSearchError(
			models.ErrCodeBrowserCrash,
			"failed to launch browser",
			err,
		)
	}
	slog.Info("browser launched", "controlURL", controlURL)

	b := rod.New().ControlURL(controlURL)
	if err := b.Connect(); err != nil {
		return nil, models.NewSearchError(
			models.ErrCodeBrowserCrash,
			"failed to connect to browser",
			err,
		)
	}

	return &Browser{browser: b, cfg: cfg}, nil
}

// NewSession creates a fresh page with stealth and headers installed.
// Callers must Close the session to avoid leaking tabs.
func (b *Browser) NewSession() (Session, error) {
	page, err := b.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, models.NewSearchError(
			models.ErrCodeBrowserCrash,
			"failed to create page",
			err,
		)
	}

	// Stealth and headers must be installed before the first navigation;
	// they only apply to loads that happen after them.
	if _, err := page.EvalOnNewDocument(stealth.JS); err != nil {
		slog.Warn("stealth injection failed, proceeding without stealth", "error", err)
	}

	if b.cfg.UserAgent != "" {
		if err := page.SetUserAgent(&proto.NetworkSetUserAgentOverride{
			UserAgent: b.cfg.UserAgent,
		}); err != nil {
			slog.Warn("user agent override failed", "error", err)
		}
	}

	err = proto.NetworkSetExtraHTTPHeaders{
		Headers: toHeadersMap(map[string]string{
			"Accept-Language": "en-US,en;q=0.9",
		}),
	}.Call(page)
	if err != nil {
		slog.Warn("extra header install failed", "error", err)
	}

	return &rodSession{page: page}, nil
}

// Close kills the browser process. Call on shutdown to prevent zombie
// Chromium processes.
func (b *Browser) Close() {
	if err := b.browser.Close(); err != nil {
		slog.Warn("browser close failed", "error", err)
	}
}

// rodSession implements Session over one rod page.
type rodSession struct {
	page *rod.Page
}

func (s *rodSession) Navigate(ctx context.Context, url string, timeout time.Duration) error {
	navCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	p := s.page.Context(navCtx)
	if err := p.Navigate(url); err != nil {
		return categorizeError(err, "navigation failed")
	}
	if err := p.WaitDOMStable(300*time.Millisecond, 0.1); err != nil {
		slog.Debug("WaitDOMStable did not converge, proceeding with current DOM",
			"url", url, "error", err)
	}
	return nil
}

func (s *rodSession) FindControl(pattern string) (Node, bool) {
	el, err := s.page.Sleeper(rod.NotFoundSleeper).Element(pattern)
	if err != nil {
		return nil, false
	}
	return &rodNode{el: el}, true
}

func (s *rodSession) Type(n Node, text string) error {
	rn, ok := n.(*rodNode)
	if !ok || rn.el == nil {
		return models.NewSearchError(models.ErrCodeExtraction, "type target is not a live element", nil)
	}
	if err := rn.el.Click(proto.InputMouseButtonLeft, 1); err != nil {
		return categorizeError(err, "failed to focus control")
	}
	if err := rn.el.Input(text); err != nil {
		return categorizeError(err, "failed to type into control")
	}
	return nil
}

func (s *rodSession) PressKey(key string) error {
	k, ok := keyMap[key]
	if !ok {
		return models.NewSearchError(models.ErrCodeExtraction, "unknown key "+key, nil)
	}
	return s.page.Keyboard.Press(k)
}

func (s *rodSession) WaitForRegion(pattern string, timeout time.Duration) bool {
	_, err := s.page.Timeout(timeout).Element(pattern)
	return err == nil
}

func (s *rodSession) QueryAll(pattern string) []Node {
	els, err := s.page.Sleeper(rod.NotFoundSleeper).Elements(pattern)
	if err != nil {
		return nil
	}
	nodes := make([]Node, 0, len(els))
	for _, el := range els {
		nodes = append(nodes, &rodNode{el: el})
	}
	return nodes
}

func (s *rodSession) HTML() (string, error) {
	html, err := s.page.HTML()
	if err != nil {
		return "", categorizeError(err, "failed to read page HTML")
	}
	return html, nil
}

func (s *rodSession) PageTitle() string {
	return evalStringOrEmpty(s.page, `() => document.title`)
}

func (s *rodSession) Screenshot(path string) error {
	data, err := s.page.Screenshot(true, nil)
	if err != nil {
		return categorizeError(err, "screenshot capture failed")
	}
	return os.WriteFile(path, data, 0o644)
}

func (s *rodSession) Close() error {
	return s.page.Close()
}

// rodNode implements Node over one rod element.
type rodNode struct {
	el *rod.Element
}

func (n *rodNode) Text() string {
	text, err := n.el.Text()
	if err != nil {
		return ""
	}
	return text
}

func (n *rodNode) Attr(name string) *string {
	attr, err := n.el.Attribute(name)
	if err != nil {
		return nil
	}
	return attr
}

func (n *rodNode) First(pattern string) Node {
	el, err := n.el.Sleeper(rod.NotFoundSleeper).Element(pattern)
	if err != nil {
		return nil
	}
	return &rodNode{el: el}
}

func (n *rodNode) All(pattern string) []Node {
	els, err := n.el.Elements(pattern)
	if err != nil {
		return nil
	}
	nodes := make([]Node, 0, len(els))
	for _, el := range els {
		nodes = append(nodes, &rodNode{el: el})
	}
	return nodes
}

var keyMap = map[string]input.Key{
	"Enter":  input.Enter,
	"Escape": input.Escape,
	"Tab":    input.Tab,
}

// evalStringOrEmpty evaluates a JS expression and returns the string result,
// swallowing any errors (useful for optional metadata extraction).
func evalStringOrEmpty(page *rod.Page, js string) string {
	res, err := page.Eval(js)
	if err != nil {
		return ""
	}
	return res.Value.Str()
}

// toHeadersMap converts a plain string map to the proto.NetworkHeaders type
// (map[string]gson.JSON) required by NetworkSetExtraHTTPHeaders.
func toHeadersMap(headers map[string]string) proto.NetworkHeaders {
	m := make(proto.NetworkHeaders, len(headers))
	for k, v := range headers {
		m[k] = gson.New(v)
	}
	return m
}

// categorizeError wraps raw engine errors into typed SearchErrors so callers
// can distinguish timeouts from hard navigation failures.
func categorizeError(err error, msg string) *models.SearchError {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return models.NewSearchError(models.ErrCodeTimeout, msg, err)
	case errors.Is(err, context.Canceled):
		return models.NewSearchError(models.ErrCodeTimeout, "operation canceled", err)
	default:
		return models.NewSearchError(models.ErrCodeNavigation, msg, err)
	}
}
