package optparse

// Parses args against opts without modifying args.
func Parse(opts *Options, args []string, parseOpts ...parseOpt) (*Result, error) {
	return NewParser(opts, parseOpts...).Parse(args)
}

// Parses *args against opts, removing consumed tokens from it on success.
func ParseArgs(opts *Options, args *[]string, parseOpts ...parseOpt) (*Result, error) {
	return NewParser(opts, parseOpts...).ParseArgs(args)
}
