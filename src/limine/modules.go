package limine

// ModuleFlags configure how an internal module is loaded.
type ModuleFlags uint64

const (
	// ModuleRequired makes the loader refuse to boot if the module is
	// not found.
	ModuleRequired ModuleFlags = 1 << 0
	// ModuleCompressed marks the module as GZ-compressed, to be
	// uncompressed by the loader.  Honored on response revision 2 and
	// greater.
	ModuleCompressed ModuleFlags = 1 << 1
)

// InternalModule names one extra file the executable wants loaded
// alongside it.  Build these at package initialization and hand them to
// ModuleRequest.WithInternalModules; everything they point at must stay
// alive for the life of the program.
type InternalModule struct {
	path    *byte
	cmdline *byte
	flags   ModuleFlags
}

// NewInternalModule creates a module with an empty path, empty command
// line and no flags.
func NewInternalModule() InternalModule {
	return InternalModule{
		path:    &emptyCStr[0],
		cmdline: &emptyCStr[0],
	}
}

// WithPath sets the path the loader should fetch the module from.
func (m InternalModule) WithPath(path string) InternalModule {
	m.path = CStr(path)
	return m
}

// WithCmdline sets the module's command line.
func (m InternalModule) WithCmdline(cmdline string) InternalModule {
	m.cmdline = CStr(cmdline)
	return m
}

// WithFlags sets the module's flags.
func (m InternalModule) WithFlags(flags ModuleFlags) InternalModule {
	m.flags = flags
	return m
}

// Path returns the module's requested path.
func (m *InternalModule) Path() string {
	return cstr{raw: m.path}.str()
}

// Cmdline returns the module's command line.
func (m *InternalModule) Cmdline() string {
	return cstr{raw: m.cmdline}.str()
}

// Flags returns the module's flags.
func (m *InternalModule) Flags() ModuleFlags {
	return m.flags
}
