package models

// File is an emitted artifact. Path is slash-separated with no leading slash.
type File struct {
	Path    string `yaml:"path" json:"path"`
	Content string `yaml:"content" json:"content"`
}

// FragmentOutcome records what a single fragment generator contributed.
// Err is non-empty when the generator failed and its files were dropped.
type FragmentOutcome struct {
	Name      string `json:"name"`
	Triggered bool   `json:"triggered"`
	Files     int    `json:"files"`
	Err       string `json:"error,omitempty"`
}

// PathCollision records a path that appears more than once in Project.Files.
type PathCollision struct {
	Path  string `json:"path"`
	Count int    `json:"count"`
}

// Report carries the per-fragment outcomes and duplicate paths of a generation run.
type Report struct {
	Fragments  []FragmentOutcome `json:"fragments"`
	Collisions []PathCollision   `json:"collisions,omitempty"`
}

// Project is the output descriptor of a generation call.
type Project struct {
	Name                 string             `json:"name"`
	TechStack            TechStack          `json:"techStack"`
	DeploymentPlatform   DeploymentPlatform `json:"deploymentPlatform"`
	SecurityFeatures     []SecurityFeature  `json:"securityFeatures"`
	ComplianceFrameworks []string           `json:"complianceFrameworks"`
	MonitoringTools      []string           `json:"monitoringTools"`
	Files                []File             `json:"files"`
	Report               Report             `json:"report"`
}

// FilePaths returns the path of every file in insertion order, duplicates included.
func (p *Project) FilePaths() []string {
	paths := make([]string, len(p.Files))
	for i, f := range p.Files {
		paths[i] = f.Path
	}
	return paths
}

// Lookup returns the last file with the given path, matching what an
// archive or directory export would contain.
func (p *Project) Lookup(path string) (File, bool) {
	for i := len(p.Files) - 1; i >= 0; i-- {
		if p.Files[i].Path == path {
			return p.Files[i], true
		}
	}
	return File{}, false
}

// Failed returns the fragment outcomes that ended in an error.
func (p *Project) Failed() []FragmentOutcome {
	var failed []FragmentOutcome
	for _, o := range p.Report.Fragments {
		if o.Err != "" {
			failed = append(failed, o)
		}
	}
	return failed
}
