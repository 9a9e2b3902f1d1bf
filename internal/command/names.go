package command

// Name identifies one command in the closed command set.
type Name int

const (
	Ls Name = iota
	Cd
	Pwd
	Cat
	Help
	Clear
	Echo
	Whoami
	Date
	Neofetch
	About
	Experience
	Projects
	Skills
	Contact
	Exit
	GUI

	nameCount
)

var nameStrings = [nameCount]string{
	Ls:         "ls",
	Cd:         "cd",
	Pwd:        "pwd",
	Cat:        "cat",
	Help:       "help",
	Clear:      "clear",
	Echo:       "echo",
	Whoami:     "whoami",
	Date:       "date",
	Neofetch:   "neofetch",
	About:      "about",
	Experience: "experience",
	Projects:   "projects",
	Skills:     "skills",
	Contact:    "contact",
	Exit:       "exit",
	GUI:        "gui",
}

var byString = func() map[string]Name {
	m := make(map[string]Name, nameCount)
	for n := Name(0); n < nameCount; n++ {
		m[nameStrings[n]] = n
	}
	return m
}()

func (n Name) String() string {
	if n < 0 || n >= nameCount {
		return "unknown"
	}
	return nameStrings[n]
}

// Names returns every command in help order.
func Names() []Name {
	names := make([]Name, nameCount)
	for i := range names {
		names[i] = Name(i)
	}
	return names
}

// Lookup maps typed input to a Name. Matching is case-sensitive.
func Lookup(raw string) (Name, bool) {
	n, ok := byString[raw]
	return n, ok
}

// Strings returns the command names in help order, for completion.
func Strings() []string {
	out := make([]string, nameCount)
	copy(out, nameStrings[:])
	return out
}
