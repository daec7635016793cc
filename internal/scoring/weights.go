package scoring

// Normalization targets. A person hitting the target earns a full sub-score;
// overshoot is capped by the sub-term clamp.
const (
	pipelineCoverageTarget = 3.5 // healthy pipeline multiple
	newOppsTarget          = 6   // new opps per 30 days
	cycleBreakEvenDays     = 30  // cycle length scoring par
	cyclePenaltyPerDay     = 2
	execMeetingsTarget     = 8 // exec meetings per 90 days
	completionsTarget      = 8
	minutesTarget          = 600 // ~10h of consumption
	recencyPenaltyPerDay   = 2
	certPoints             = 25 // per certification
)

// PipelineWeights weight the Pipeline Discipline sub-terms.
type PipelineWeights struct {
	Coverage float64
	Stalled  float64
	NewOpps  float64
}

// ExecutionWeights weight the Deal Execution sub-terms.
type ExecutionWeights struct {
	Win      float64
	Cycle    float64
	Meddpicc float64
}

// ValueCoWeights weight the Value Co-Creation sub-terms.
type ValueCoWeights struct {
	BusinessCase     float64
	QuantifiedImpact float64
	ExecMeetings     float64
	MutualPlan       float64
}

// UptakeWeights weight the legacy Capability Uptake sub-terms.
type UptakeWeights struct {
	Completions float64
	Minutes     float64
	Recency     float64
	Assessment  float64
	Certs       float64
}

// ScoreWeights names every weight the calculator uses. Variant deployments
// tune these instead of forking the formulas. Data Hygiene is an unweighted
// mean and carries no entry here.
type ScoreWeights struct {
	Pipeline  PipelineWeights
	Execution ExecutionWeights
	ValueCo   ValueCoWeights
	Uptake    UptakeWeights
}

// DefaultScoreWeights returns the reference weighting.
func DefaultScoreWeights() ScoreWeights {
	return ScoreWeights{
		Pipeline:  PipelineWeights{Coverage: 0.4, Stalled: 0.3, NewOpps: 0.3},
		Execution: ExecutionWeights{Win: 0.4, Cycle: 0.3, Meddpicc: 0.3},
		ValueCo:   ValueCoWeights{BusinessCase: 0.3, QuantifiedImpact: 0.3, ExecMeetings: 0.2, MutualPlan: 0.2},
		Uptake:    UptakeWeights{Completions: 0.25, Minutes: 0.25, Recency: 0.2, Assessment: 0.2, Certs: 0.1},
	}
}
