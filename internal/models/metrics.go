package models

// ProjectMetrics contains computed analytics for a single project.
// ProgressPercentage is expected within [0,100] but is stored as received;
// consumers clamp at render time.
type ProjectMetrics struct {
	ProgressPercentage  float64 `json:"progressPercentage"`
	CostVariance        float64 `json:"costVariance"`
	ScheduleVariance    int     `json:"scheduleVariance"`
	ResourceUtilization float64 `json:"resourceUtilization"`
}
