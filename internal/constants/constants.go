package constants

const (
	Version        = `0.1.0`
	ConfigFile     = `jot`
	ConfigFileType = `yaml`
	ConfigDir      = `/.jot/`
	LogFile        = `jot.log`

	DefaultServerURL = `http://localhost:6474`
	DefaultScope     = `title+content`
)
