package command

import (
	"fmt"
	"strings"

	"github.com/Cyclone1070/foliosh/internal/content"
	"github.com/Cyclone1070/foliosh/internal/output"
	"github.com/Cyclone1070/foliosh/internal/vfs"
)

func (e *Executor) about(inv *invocation) {
	readInto(inv, About.String(), content.AboutPath)
}

func (e *Executor) contact(inv *invocation) {
	readInto(inv, Contact.String(), content.ContactPath)
}

func (e *Executor) experience(inv *invocation) {
	readAll(inv, Experience.String(), content.ExperienceDir, false)
}

func (e *Executor) projects(inv *invocation) {
	readAll(inv, Projects.String(), content.ProjectsDir, false)
}

func (e *Executor) skills(inv *invocation) {
	readAll(inv, Skills.String(), content.SkillsDir, true)
}

// readAll prints every file in dir in tree order. With headers, each file is
// preceded by an info line naming it without its extension.
func readAll(inv *invocation, cmd, dir string, headers bool) {
	nodes, err := inv.fs.ListDirectory(dir)
	if err != nil {
		inv.fail(output.ExitFailure, fmt.Sprintf("%s: %s: %s", cmd, dir, vfs.Reason(err)))
		return
	}
	if len(nodes) == 0 {
		inv.info(fmt.Sprintf("Nothing in %s yet.", dir), nil)
		return
	}
	for _, node := range nodes {
		if node.IsDir() {
			continue
		}
		if headers {
			inv.info(strings.TrimSuffix(node.Name(), extOf(node.Name()))+":", nil)
		}
		readInto(inv, cmd, vfs.Join(dir, node.Name()))
	}
}

func extOf(name string) string {
	if i := strings.LastIndexByte(name, '.'); i > 0 {
		return name[i:]
	}
	return ""
}
