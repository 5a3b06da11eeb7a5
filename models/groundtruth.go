package models

type GroundTruth struct {
	Tasks     map[string]struct{}
	Workflows map[string]struct{}
	Files     map[string]struct{}
}

func (g *GroundTruth) HasTask(name string) bool {
	_, ok := g.Tasks[name]
	return ok
}

func (g *GroundTruth) HasWorkflow(name string) bool {
	_, ok := g.Workflows[name]
	return ok
}

func (g *GroundTruth) HasFile(path string) bool {
	_, ok := g.Files[path]
	return ok
}
