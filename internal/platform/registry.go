package platform

import (
	"strings"

	"github.com/cockroachdb/errors"

	zcerrors "github.com/TriNgo0108/z-command/internal/errors"
)

// Platform identifiers for supported AI coding assistants.
const (
	IDCopilot     = "copilot"
	IDCursor      = "cursor"
	IDAgent       = "agent"
	IDAntigravity = "antigravity"
	IDGemini      = "gemini"
)

// registry holds the platform table in display order. Entries are defined
// once here and treated as read-only for the life of the process.
var registry = []Config{
	{
		ID:              IDCopilot,
		DisplayName:     "GitHub Copilot",
		ProjectDir:      ".github",
		GlobalDir:       ".config/github-copilot",
		SkillsDir:       "skills",
		AgentsDir:       "chatmodes",
		GlobalAgentsDir: "prompts",
		AgentExtension:  ".chatmode.md",
		SharedDir:       ".shared",
		TransformSkill:  copilotSkill,
		TransformAgent:  copilotAgent,
	},
	{
		ID:             IDCursor,
		DisplayName:    "Cursor",
		ProjectDir:     ".cursor",
		GlobalDir:      ".cursor",
		SkillsDir:      "skills",
		AgentsDir:      "rules",
		AgentExtension: ".mdc",
		SharedDir:      ".shared",
		TransformAgent: cursorAgent,
	},
	{
		ID:             IDAgent,
		DisplayName:    "Generic Agent",
		ProjectDir:     ".agent",
		GlobalDir:      ".agent",
		SkillsDir:      "skills",
		AgentsDir:      "agents",
		AgentExtension: ".md",
		SharedDir:      ".shared",
	},
	{
		// Antigravity requires self-contained skills: data/ and scripts/
		// stay inside each skill directory, so SharedDir is unset.
		ID:             IDAntigravity,
		DisplayName:    "Antigravity",
		ProjectDir:     ".antigravity",
		GlobalDir:      ".antigravity",
		SkillsDir:      "skills",
		AgentsDir:      "agents",
		AgentExtension: ".md",
	},
	{
		// Gemini CLI has no skill convention; agents become TOML files.
		ID:             IDGemini,
		DisplayName:    "Gemini CLI",
		ProjectDir:     ".gemini",
		GlobalDir:      ".gemini",
		AgentsDir:      "agents",
		AgentExtension: ".toml",
		TransformAgent: geminiAgent,
	},
}

// All returns every registered platform in table order.
func All() []Config {
	out := make([]Config, len(registry))
	copy(out, registry)
	return out
}

// IDs returns every registered platform identifier in table order.
func IDs() []string {
	ids := make([]string, len(registry))
	for i, p := range registry {
		ids[i] = p.ID
	}
	return ids
}

// DefaultIDs returns the platform identifiers installed when no target is
// given and no configuration overrides the set. Gemini is excluded from the
// defaults since it only takes agents in a converted format.
func DefaultIDs() []string {
	return []string{IDCopilot, IDCursor, IDAgent, IDAntigravity}
}

// Get returns the platform with the given identifier.
// Returns ErrUnknownPlatform when the identifier is not registered.
func Get(id string) (Config, error) {
	for _, p := range registry {
		if p.ID == id {
			return p, nil
		}
	}
	return Config{}, errors.Wrapf(zcerrors.ErrUnknownPlatform,
		"%q (available: %s)", id, strings.Join(IDs(), ", "))
}

// Resolve maps a --target value to a platform set.
//
// Accepted forms:
//   - "" uses the defaults slice (typically from configuration)
//   - "all" returns every registered platform in table order
//   - a single identifier or a comma-separated list, resolved in request order
func Resolve(target string, defaults []string) ([]Config, error) {
	switch target {
	case "":
		if len(defaults) == 0 {
			defaults = DefaultIDs()
		}
		return resolveIDs(defaults)
	case "all":
		return All(), nil
	default:
		ids := strings.Split(target, ",")
		for i, id := range ids {
			ids[i] = strings.TrimSpace(id)
		}
		return resolveIDs(ids)
	}
}

func resolveIDs(ids []string) ([]Config, error) {
	out := make([]Config, 0, len(ids))
	for _, id := range ids {
		p, err := Get(id)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}
