package platform

import (
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/TriNgo0108/z-command/pkg/frontmatter"
)

// Transforms are pure functions from content to content. A template whose
// frontmatter cannot be parsed passes through unchanged rather than failing
// the install; the markdown bodies are opaque payloads.

// copilotSkillMeta is the frontmatter subset GitHub Copilot reads from a
// skill. Unknown keys are dropped.
type copilotSkillMeta struct {
	Name        string `yaml:"name,omitempty"`
	Description string `yaml:"description,omitempty"`
}

func copilotSkill(content string) string {
	var meta copilotSkillMeta
	body, err := frontmatter.Parse(strings.NewReader(content), &meta)
	if err != nil || (meta.Name == "" && meta.Description == "") {
		return content
	}
	out, err := frontmatter.Format(meta, string(body))
	if err != nil {
		return content
	}
	return string(out)
}

// copilotChatmodeMeta is the frontmatter of a Copilot chatmode file.
type copilotChatmodeMeta struct {
	Description string   `yaml:"description,omitempty"`
	Tools       []string `yaml:"tools,omitempty"`
}

func copilotAgent(content string, _ string) string {
	var meta struct {
		Description string   `yaml:"description"`
		Tools       []string `yaml:"tools"`
	}
	body, err := frontmatter.Parse(strings.NewReader(content), &meta)
	if err != nil {
		return content
	}
	out, err := frontmatter.Format(copilotChatmodeMeta{
		Description: meta.Description,
		Tools:       meta.Tools,
	}, string(body))
	if err != nil {
		return content
	}
	return string(out)
}

// cursorRuleMeta is the frontmatter of a Cursor .mdc rule file. Installed
// agents are manually invoked personas, so alwaysApply stays false.
type cursorRuleMeta struct {
	Description string `yaml:"description,omitempty"`
	AlwaysApply bool   `yaml:"alwaysApply"`
}

func cursorAgent(content string, _ string) string {
	var meta struct {
		Description string `yaml:"description"`
	}
	body, err := frontmatter.Parse(strings.NewReader(content), &meta)
	if err != nil {
		return content
	}
	out, err := frontmatter.Format(cursorRuleMeta{
		Description: meta.Description,
		AlwaysApply: false,
	}, string(body))
	if err != nil {
		return content
	}
	return string(out)
}

// geminiAgentFile is the on-disk TOML shape of a Gemini CLI agent.
type geminiAgentFile struct {
	Name        string `toml:"name"`
	Description string `toml:"description,omitempty"`
	Prompt      string `toml:"prompt,multiline"`
}

func geminiAgent(content string, originalName string) string {
	var meta struct {
		Description string `yaml:"description"`
	}
	body, err := frontmatter.Parse(strings.NewReader(content), &meta)
	if err != nil {
		return content
	}
	out, err := toml.Marshal(geminiAgentFile{
		Name:        strings.TrimSuffix(originalName, ".agent.md"),
		Description: meta.Description,
		Prompt:      strings.TrimSpace(string(body)),
	})
	if err != nil {
		return content
	}
	return string(out)
}
