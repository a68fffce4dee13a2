package platform

// SkillTransform rewrites a skill body (SKILL.md content) for a platform.
type SkillTransform func(content string) string

// AgentTransform rewrites an agent body for a platform. The original source
// filename (e.g. "reviewer.agent.md") is passed so transforms can derive
// an identifier for the output format.
type AgentTransform func(content, originalName string) string

// Config describes one platform's directory conventions and content
// transforms. Values are defined once at process start and never mutated;
// per-platform behavior is plain data plus optional pure functions, not a
// type hierarchy.
type Config struct {
	// ID is the identifier used in --target and config files.
	ID string

	// DisplayName is the human-readable platform name for summaries.
	DisplayName string

	// ProjectDir is the directory under the project working directory used
	// for local installs (e.g. ".github", ".cursor").
	ProjectDir string

	// GlobalDir is the directory under the user's home directory used for
	// global installs.
	GlobalDir string

	// SkillsDir is the directory under the target base where skill
	// directories are placed. Empty means the platform does not take skills.
	SkillsDir string

	// AgentsDir is the directory under the target base where agent files
	// are placed.
	AgentsDir string

	// GlobalAgentsDir overrides AgentsDir for global installs when set.
	GlobalAgentsDir string

	// AgentExtension replaces the ".agent.md" suffix on installed agent
	// files (e.g. ".md", ".chatmode.md").
	AgentExtension string

	// SharedDir is the directory, always resolved against the project
	// working directory, where a skill's data/ and scripts/ subtrees are
	// centralized. Empty means skills stay fully self-contained.
	SharedDir string

	// TransformSkill rewrites SKILL.md content before writing. Nil means
	// the content is copied unchanged.
	TransformSkill SkillTransform

	// TransformAgent rewrites agent content before writing. Nil means the
	// content is copied unchanged.
	TransformAgent AgentTransform
}

// SupportsSkills reports whether the platform takes skill installs.
func (c Config) SupportsSkills() bool {
	return c.SkillsDir != ""
}

// AgentsDirFor returns the agents directory for the install mode:
// GlobalAgentsDir when installing globally and the platform defines one,
// AgentsDir otherwise.
func (c Config) AgentsDirFor(global bool) string {
	if global && c.GlobalAgentsDir != "" {
		return c.GlobalAgentsDir
	}
	return c.AgentsDir
}
