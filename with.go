package elloapi

import (
	"github.com/ello/elloapi/common"
	"github.com/ello/elloapi/config"
	"github.com/ello/elloapi/coverage"
	"github.com/ello/elloapi/logging"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
	"time"
)

type With interface {
	Init(init ProviderInit)
}

type ProviderInit interface {
	SetBaseURL(baseUrl string)
	SetLocale(locale string)
	SetTokens(tokens TokenProvider)
	SetClock(clock Clock)
	SetHttpDo(httpDo common.HttpDo)
	SetTimeout(timeout time.Duration)
	SetLogger(logger zerolog.Logger)
	SetRateLimit(perSecond float64, burst int)
	SetMode(mode Mode)
	SetTransport(live Transport, stub Transport)
	SetCoverage(collector coverage.Collector)
	SetClient(client ClientCredentials)
	SetInitError(err error)
}

func WithBaseURL(baseUrl string) With {
	return &with{
		fn: func(init ProviderInit) {
			init.SetBaseURL(baseUrl)
		}}
}

func WithLocale(locale string) With {
	return &with{
		fn: func(init ProviderInit) {
			init.SetLocale(locale)
		}}
}

func WithTokens(tokens TokenProvider) With {
	return &with{
		fn: func(init ProviderInit) {
			init.SetTokens(tokens)
		}}
}

func WithClock(clock Clock) With {
	return &with{
		fn: func(init ProviderInit) {
			init.SetClock(clock)
		}}
}

func WithHttpDo(httpDo common.HttpDo) With {
	return &with{
		fn: func(init ProviderInit) {
			init.SetHttpDo(httpDo)
		}}
}

func WithTimeout(timeout time.Duration) With {
	return &with{
		fn: func(init ProviderInit) {
			init.SetTimeout(timeout)
		}}
}

func WithLogger(logger zerolog.Logger) With {
	return &with{
		fn: func(init ProviderInit) {
			init.SetLogger(logger)
		}}
}

// WithRateLimit limits live requests to perSecond (with the given burst)
func WithRateLimit(perSecond float64, burst int) With {
	return &with{
		fn: func(init ProviderInit) {
			init.SetRateLimit(perSecond, burst)
		}}
}

// WithMode pins the provider's mode (the process-wide mode is then ignored)
func WithMode(mode Mode) With {
	return &with{
		fn: func(init ProviderInit) {
			init.SetMode(mode)
		}}
}

// WithTransport replaces the live transport
func WithTransport(live Transport) With {
	return &with{
		fn: func(init ProviderInit) {
			init.SetTransport(live, nil)
		}}
}

// WithStubTransport replaces the stub transport
func WithStubTransport(stub Transport) With {
	return &with{
		fn: func(init ProviderInit) {
			init.SetTransport(nil, stub)
		}}
}

// WithCoverage collects coverage of live dispatches
func WithCoverage(collector coverage.Collector) With {
	return &with{
		fn: func(init ProviderInit) {
			init.SetCoverage(collector)
		}}
}

func WithClient(client ClientCredentials) With {
	return &with{
		fn: func(init ProviderInit) {
			init.SetClient(client)
		}}
}

// WithConfig applies a loaded config (base url, locale, mode, client, rate limit, timeout and logger)
func WithConfig(cfg config.Config) With {
	return &with{
		fn: func(init ProviderInit) {
			if err := cfg.Validate(); err != nil {
				init.SetInitError(err)
				return
			}
			mode, err := ParseMode(cfg.Mode)
			if err != nil {
				init.SetInitError(err)
				return
			}
			level, err := logging.ParseLevel(cfg.LogLevel)
			if err != nil {
				init.SetInitError(err)
				return
			}
			init.SetBaseURL(cfg.BaseURL)
			init.SetLocale(cfg.Locale)
			init.SetMode(mode)
			init.SetClient(ClientCredentials{ID: cfg.ClientID, Secret: cfg.ClientSecret})
			init.SetTimeout(cfg.Timeout)
			if cfg.RateLimit > 0 {
				init.SetRateLimit(cfg.RateLimit, cfg.RateBurst)
			}
			lc := logging.DefaultConfig()
			lc.Level = level
			lc.Pretty = cfg.LogPretty
			lc.Component = "elloapi"
			init.SetLogger(logging.New(lc))
		}}
}

type with struct {
	fn func(init ProviderInit)
}

func (w *with) Init(init ProviderInit) {
	w.fn(init)
}

func (p *Provider) SetBaseURL(baseUrl string) {
	p.baseUrl = baseUrl
}

func (p *Provider) SetLocale(locale string) {
	p.locale = locale
}

func (p *Provider) SetTokens(tokens TokenProvider) {
	if tokens == nil {
		tokens = NoToken
	}
	p.tokens = tokens
}

func (p *Provider) SetClock(clock Clock) {
	if clock == nil {
		clock = SystemClock
	}
	p.clock = clock
}

func (p *Provider) SetHttpDo(httpDo common.HttpDo) {
	p.httpDo = httpDo
}

func (p *Provider) SetTimeout(timeout time.Duration) {
	p.timeout = timeout
}

func (p *Provider) SetLogger(logger zerolog.Logger) {
	p.logger = logger
}

func (p *Provider) SetRateLimit(perSecond float64, burst int) {
	if burst < 1 {
		burst = 1
	}
	p.limiter = rate.NewLimiter(rate.Limit(perSecond), burst)
}

func (p *Provider) SetMode(mode Mode) {
	p.mode = &mode
}

func (p *Provider) SetTransport(live Transport, stub Transport) {
	if live != nil {
		p.live = live
	}
	if stub != nil {
		p.stub = stub
	}
}

func (p *Provider) SetCoverage(collector coverage.Collector) {
	if collector == nil {
		collector = coverage.NewNullCoverage()
	}
	p.coverage = collector
}

func (p *Provider) SetClient(client ClientCredentials) {
	p.client = client
}

func (p *Provider) SetInitError(err error) {
	if p.initError == nil {
		p.initError = err
	}
}
