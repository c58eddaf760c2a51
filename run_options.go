package go_qantani

import (
	"github.com/stremovskyy/go-qantani/consts"
	"github.com/stremovskyy/go-qantani/log"
)

// RunOption controls behavior of a single SDK call.
type RunOption func(*runOptions)

// DryRunHandler receives information about a skipped request: the command,
// the endpoint URL, and the serialized envelope that would have been posted.
type DryRunHandler func(command consts.Command, url string, envelope []byte)

type runOptions struct {
	dryRun       bool
	dryRunHandle DryRunHandler
}

var dryRunLogger = log.NewDefault()

// DryRun builds the full checksummed envelope but skips the HTTP call.
//
// Optional handler lets you inspect the request document.
func DryRun(handler ...DryRunHandler) RunOption {
	return func(o *runOptions) {
		o.dryRun = true
		if len(handler) > 0 && handler[0] != nil {
			o.dryRunHandle = handler[0]
			return
		}
		o.dryRunHandle = defaultDryRunHandler
	}
}

func collectRunOptions(opts []RunOption) *runOptions {
	if len(opts) == 0 {
		return nil
	}

	r := &runOptions{}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

func (o *runOptions) isDryRun() bool {
	return o != nil && o.dryRun
}

func (o *runOptions) handleDryRun(command consts.Command, url string, envelope []byte) {
	if o == nil || !o.dryRun || o.dryRunHandle == nil {
		return
	}
	o.dryRunHandle(command, url, envelope)
}

func shouldDryRun(runOpts []RunOption, command consts.Command, url string, envelope []byte) bool {
	opts := collectRunOptions(runOpts)
	if !opts.isDryRun() {
		return false
	}
	opts.handleDryRun(command, url, envelope)
	return true
}

func defaultDryRunHandler(command consts.Command, url string, envelope []byte) {
	dryRunLogger.Infof("Dry run: skipping command %s -> %s", command, url)
	if len(envelope) == 0 {
		dryRunLogger.Infof("Dry run envelope: <empty>")
		return
	}
	dryRunLogger.Infof("Dry run envelope:\n%s", string(envelope))
}
