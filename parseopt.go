package optparse

import "log/slog"

type parseOpt func(p *Parser)

// Flag-like tokens that match no option fail the parse instead of being
// passed through as free arguments. Every unknown flag is reported at once
// when the scan completes.
func Strict() parseOpt {
	return func(p *Parser) {
		p.strict = true
	}
}

// Treat "-abc" as the flag "-a" with the argument "bc", instead of as the
// grouped switches "-a", "-b" and "-c".
func NoMultipleSwitches() parseOpt {
	return func(p *Parser) {
		p.noMultipleSwitches = true
	}
}

// Match flags without regard to case.
func IgnoreCase() parseOpt {
	return func(p *Parser) {
		p.ignoreCase = true
	}
}

// Don't fail on missing arguments, missing required options or unknown
// flags. Invalid arguments are still errors.
func SuppressErrors() parseOpt {
	return func(p *Parser) {
		p.suppressErrors = true
	}
}

// Log matching decisions at debug level. Nothing is logged by default.
func Logger(l *slog.Logger) parseOpt {
	return func(p *Parser) {
		p.logger = l
	}
}
