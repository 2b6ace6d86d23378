package registry

type Command interface {
	Properties() Properties
	GetExecutor() interface{}
}

type Registry map[string]Command

func (r Registry) Register(commands ...Command) {
	for _, cmd := range commands {
		r[cmd.Properties().Name] = cmd
	}
}
