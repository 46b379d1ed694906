package tuple

type buildOpts struct {
	permissive bool
}

// BuildOpts controls how a [Builder] resolves its tags.
type BuildOpts interface {
	SetPermissive(bool)
	GetPermissive() bool
}

func (o *buildOpts) SetPermissive(v bool) {
	o.permissive = v
}

func (o *buildOpts) GetPermissive() bool {
	return o.permissive
}

type BuildOpt func(opts BuildOpts) BuildOpts

// Strict construction: duplicates and missing indices are errors.
func DefaultOpts() BuildOpts {
	return &buildOpts{}
}

// Permissive switches a builder to the legacy contract: when two tags target
// the same slot the first one wins, and slots no tag addressed hold the zero
// value of their type. Out-of-range indices and incompatible values are
// still rejected.
func Permissive() BuildOpt {
	return func(opts BuildOpts) BuildOpts {
		opts.SetPermissive(true)
		return opts
	}
}

func Strict() BuildOpt {
	return func(opts BuildOpts) BuildOpts {
		opts.SetPermissive(false)
		return opts
	}
}

// Copies settings from [o], e.g. to build a second tuple the way a first one was built.
func InheritOpts(o BuildOpts) BuildOpt {
	return func(opts BuildOpts) BuildOpts {
		opts.SetPermissive(o.GetPermissive())
		return opts
	}
}

func applyOpts(opts []BuildOpt) BuildOpts {
	o := DefaultOpts()
	for _, fn := range opts {
		o = fn(o)
	}
	return o
}
