// Package optparse parses command-line arguments against a declared set of
// options, and coerces their arguments to typed values.
//
// For example:
//  opts := optparse.New()
//  opts.MustAdd([]string{"-v", "--verbose"}, "say more", optparse.Config{Type: optparse.TypeBool}, nil)
//  opts.MustAdd([]string{"--age"}, "your age", optparse.Config{Type: optparse.TypeInt, Required: true}, nil)
//  opts.MustAdd([]string{"-I", "--include"}, "search paths", optparse.Config{Type: optparse.TypeList, Delimiter: ":"}, nil)
//  args := os.Args[1:]
//  res, err := optparse.ParseArgs(opts, &args, optparse.Strict())
//
// Supported syntax includes:
//  --name value, --name=value, -n value, -n=value
//  -abc: the grouped switches -a, -b and -c. The last may take an argument.
//  --no-name: negates a switch, or clears the value of other options.
//  --: everything after is a free argument.
//
// Tokens that aren't flags or flag arguments are free arguments, available
// from Result.Args. ParseArgs leaves only those in the slice it's given.
//
// The registry records the state of the last parse, so a registry must not be
// parsed from multiple goroutines at once.
package optparse
