// Package options configures the spell checker through functional options.
package options

var DefaultOptions = CheckerOptions{
	TopN:      10,
	MaskToken: "[MASK]",
	Workers:   1,
	Debug:     false,
}

type CheckerOptions struct {
	TopN      int    // candidates requested per masked position
	MaskToken string // placeholder recognized by the model vocabulary
	Workers   int    // concurrent inference calls; 1 means sequential
	Debug     bool   // per-stage timing logs
}

type Options interface {
	Apply(options *CheckerOptions)
}

type FuncConfig struct {
	ops func(options *CheckerOptions)
}

func (w FuncConfig) Apply(conf *CheckerOptions) {
	w.ops(conf)
}

func NewFuncOption(f func(options *CheckerOptions)) *FuncConfig {
	return &FuncConfig{ops: f}
}

func WithTopN(topN int) Options {
	return NewFuncOption(func(options *CheckerOptions) {
		options.TopN = topN
	})
}

func WithMaskToken(mask string) Options {
	return NewFuncOption(func(options *CheckerOptions) {
		options.MaskToken = mask
	})
}

func WithWorkers(workers int) Options {
	return NewFuncOption(func(options *CheckerOptions) {
		options.Workers = workers
	})
}

func WithDebug() Options {
	return NewFuncOption(func(options *CheckerOptions) {
		options.Debug = true
	})
}
