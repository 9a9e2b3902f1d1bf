package command

import (
	"fmt"
	"strings"
	"time"

	"github.com/Cyclone1070/foliosh/internal/content"
	"github.com/Cyclone1070/foliosh/internal/output"
	"github.com/Cyclone1070/foliosh/internal/vfs"
)

// shellName is reported by neofetch.
const shellName = "foliosh"

func (e *Executor) ls(inv *invocation) {
	target := ""
	if len(inv.args) > 0 {
		target = inv.args[0]
	}
	nodes, err := inv.fs.ListDirectory(target)
	if err != nil {
		inv.fail(output.ExitFailure, fmt.Sprintf("ls: cannot access '%s': %s", target, vfs.Reason(err)))
		return
	}

	dir := inv.fs.ResolvePath(target)
	long := inv.flags.Has("l")
	for _, node := range vfs.SortForDisplay(nodes) {
		name := node.Name()
		if node.IsDir() {
			name += "/"
		}
		text := name
		if long {
			text = fmt.Sprintf("%-9s %6d  %s", node.Kind(), node.Size(), name)
		}
		inv.print(text, map[string]any{
			output.MetaKind: node.Kind().String(),
			output.MetaPath: vfs.Join(dir, node.Name()),
		})
	}
}

// cd uses its first operand; extra operands are the validator's concern.
func (e *Executor) cd(inv *invocation) {
	target := "~"
	if len(inv.args) > 0 {
		target = inv.args[0]
	}
	if _, err := inv.fs.ChangeDirectory(target); err != nil {
		inv.fail(output.ExitFailure, fmt.Sprintf("cd: %s: %s", target, vfs.Reason(err)))
	}
}

func (e *Executor) pwd(inv *invocation) {
	inv.print(inv.fs.CurrentDirectory(), nil)
}

func (e *Executor) cat(inv *invocation) {
	if len(inv.args) == 0 {
		inv.fail(output.ExitFailure, (&MissingOperandError{Command: Cat.String()}).Error())
		return
	}
	for _, arg := range inv.args {
		readInto(inv, Cat.String(), arg)
	}
}

func (e *Executor) help(inv *invocation) {
	if len(inv.args) == 0 {
		for _, line := range helpIndex() {
			inv.print(line, nil)
		}
		return
	}
	name, ok := Lookup(inv.args[0])
	if !ok {
		inv.fail(output.ExitFailure, fmt.Sprintf("help: no help topics match '%s'", inv.args[0]))
		return
	}
	inv.print(helpTopic(name), nil)
}

func (e *Executor) clear(inv *invocation) {
	inv.info("", map[string]any{output.MetaAction: output.ActionClear})
}

func (e *Executor) echo(inv *invocation) {
	inv.print(strings.Join(inv.args, " "), nil)
}

func (e *Executor) whoami(inv *invocation) {
	inv.print(e.identity.User, nil)
}

func (e *Executor) date(inv *invocation) {
	inv.print(inv.now.Format(time.UnixDate), nil)
}

func (e *Executor) neofetch(inv *invocation) {
	header := e.identity.User + "@" + e.identity.Host
	inv.print(header, nil)
	inv.print(strings.Repeat("-", len(header)), nil)

	fields := []struct{ key, value string }{
		{"Owner", e.identity.Owner},
		{"Title", e.identity.Title},
		{"Location", e.identity.Location},
		{"Shell", shellName},
		{"Jobs", fmt.Sprint(countEntries(inv.fs, content.ExperienceDir))},
		{"Projects", fmt.Sprint(countEntries(inv.fs, content.ProjectsDir))},
		{"Skills", fmt.Sprint(countEntries(inv.fs, content.SkillsDir))},
	}
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		inv.print(fmt.Sprintf("%s: %s", f.key, f.value), nil)
	}
}

func (e *Executor) exit(inv *invocation) {
	inv.info("Goodbye.", map[string]any{output.MetaAction: output.ActionExit})
}

// readInto prints the file at path, or records a "<cmd>: <path>: <reason>" failure.
func readInto(inv *invocation, cmd, path string) bool {
	text, err := inv.fs.ReadFile(path)
	if err != nil {
		inv.fail(output.ExitFailure, fmt.Sprintf("%s: %s: %s", cmd, path, vfs.Reason(err)))
		return false
	}
	abs := inv.fs.ResolvePath(path)
	inv.print(text, map[string]any{
		output.MetaPath:   abs,
		output.MetaFormat: content.FormatFor(abs),
	})
	return true
}

func countEntries(fs fileSystem, dir string) int {
	nodes, err := fs.ListDirectory(dir)
	if err != nil {
		return 0
	}
	return len(nodes)
}
