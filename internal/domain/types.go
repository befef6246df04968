package domain

// Raw records are the typed row shapes coming out of the graph query
// layer. Nullable graph properties arrive as empty strings or zero
// values; all defaulting happens in the aggregation layer.

type ConstraintRecord struct {
	Name        string
	Description string
	Category    string
	Severity    string
}

type ErrorStatementRecord struct {
	Statement          string
	Category           string
	Impact             string
	KpiName            string
	KpiUnit            string
	RelatedJobMapSteps []string
	RelatedCoreJobs    []string
}

type CoreJobRecord struct {
	Name        string
	Statement   string
	Category    string
	Description string
}

type JobMapStepRecord struct {
	Name        string
	Description string
	StepNumber  int
}

type ProductJobRecord struct {
	Name        string
	Statement   string
	Description string
	Category    string
	Level       string
	UseContext  string
	UserGroup   string
	Frequency   string
}

type KanoRangeRecord struct {
	FactName            string
	UnitOfMeasure       string
	ReverseRange        string
	MustBeRange         string
	OneDimensionalRange string
	AttractiveRange     string
	ClassifiedAt        string
}

type MarketRecord struct {
	Name         string
	CpcCode      string
	Description  string
	CoreJobCount int
}

// MarketDetailRecord carries the full market node used by the market
// detail endpoint, including the seven market-type criteria triples.
type MarketDetailRecord struct {
	Name                string
	Description         string
	MarketType          string
	CoreFunctionalJob   string
	CpcCode             string
	MarketTypeHighCount int

	CfjPerformanceRating    string
	CfjPerformanceReasoning string
	CfjPerformanceSources   string

	PerformanceExceedsNeedsRating   string
	PerformanceExceedsNeedsAnalysis string
	PerformanceExceedsNeedsSources  string

	WillingnessToPayDecliningRating   string
	WillingnessToPayDecliningAnalysis string
	WillingnessToPayDecliningSources  string

	ShiftingPurchaseCriteriaRating   string
	ShiftingPurchaseCriteriaAnalysis string
	ShiftingPurchaseCriteriaSources  string

	IncumbentsOverservingRating   string
	IncumbentsOverservingAnalysis string
	IncumbentsOverservingSources  string

	NewSegmentsEmergingRating   string
	NewSegmentsEmergingAnalysis string
	NewSegmentsEmergingSources  string

	DecreasingDifferentiationRating   string
	DecreasingDifferentiationAnalysis string
	DecreasingDifferentiationSources  string
}

type CommodityRecord struct {
	CommodityID string
	Name        string
}

type ProductRecord struct {
	Name           string
	Company        string
	Description    string
	CommodityID    string
	CommodityTitle string
}

type UnspscClassRecord struct {
	ClassName   string
	ClassID     string
	FamilyName  string
	FamilyID    string
	SegmentName string
	SegmentID   string
}

// View models below are the exact JSON shapes returned to the client.

type CommodityOption struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	CommodityID string `json:"commodityId"`
}

type SelectOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type ConstraintSummary struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

type Constraint struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Sensitivity string `json:"sensitivity"`
}

type ConstraintDetail struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Severity    string `json:"severity"`
}

type ConstraintsView struct {
	ConstraintsBySeverity map[string][]ConstraintSummary `json:"constraintsBySeverity"`
	ConstraintsByCategory map[string][]Constraint        `json:"constraintsByCategory"`
	Constraints           []Constraint                   `json:"constraints"`
	SeverityCounts        map[string]int                 `json:"severityCounts"`
	AllConstraints        []ConstraintDetail             `json:"allConstraints"`
	TotalConstraints      int                            `json:"totalConstraints"`
	Severities            []string                       `json:"severities"`
}

type StepErrorStatement struct {
	Statement       string   `json:"statement"`
	Category        string   `json:"category"`
	Impact          string   `json:"impact"`
	KpiName         string   `json:"kpiName"`
	KpiUnit         string   `json:"kpiUnit"`
	RelatedCoreJobs []string `json:"relatedCoreJobs"`
}

type JobMapStep struct {
	Order           int                  `json:"order"`
	Name            string               `json:"name"`
	Description     string               `json:"description"`
	ErrorStatements []StepErrorStatement `json:"errorStatements"`
	NeedsCount      int                  `json:"needsCount"`
}

type CoreJobErrorStatement struct {
	Statement string `json:"statement"`
	Category  string `json:"category"`
	KpiName   string `json:"kpiName"`
	KpiUnit   string `json:"kpiUnit"`
}

type CoreJob struct {
	Name            string                  `json:"name"`
	Statement       string                  `json:"statement"`
	Description     string                  `json:"description"`
	ErrorStatements []CoreJobErrorStatement `json:"errorStatements"`
}

type CoreJobsView struct {
	Steps                []JobMapStep         `json:"steps"`
	CoreJobs             map[string][]CoreJob `json:"coreJobs"`
	CoreFunctionalJob    string               `json:"coreFunctionalJob"`
	TotalCoreJobs        int                  `json:"totalCoreJobs"`
	TotalErrorStatements int                  `json:"totalErrorStatements"`
	TotalJobMapSteps     int                  `json:"totalJobMapSteps"`
}

type ProductJob struct {
	Name        string `json:"name"`
	Statement   string `json:"statement"`
	Description string `json:"description"`
	Level       string `json:"level"`
	UseContext  string `json:"useContext"`
	UserGroup   string `json:"userGroup"`
	Frequency   string `json:"frequency"`
}

type ProductJobsView struct {
	JobsByCategory map[string][]ProductJob `json:"jobsByCategory"`
	CategoryCounts map[string]int          `json:"categoryCounts"`
	TotalJobs      int                     `json:"totalJobs"`
	Categories     []string                `json:"categories"`
}

type KanoFeature struct {
	ID                  string  `json:"id"`
	Name                string  `json:"name"`
	UnitOfMeasure       string  `json:"unitOfMeasure"`
	ReverseRange        string  `json:"reverseRange"`
	MustBeRange         string  `json:"mustBeRange"`
	OneDimensionalRange string  `json:"oneDimensionalRange"`
	AttractiveRange     string  `json:"attractiveRange"`
	ClassifiedAt        *string `json:"classifiedAt"`
	IsNewLearning       bool    `json:"isNewLearning,omitempty"`
	UpdatedColumn       string  `json:"updatedColumn,omitempty"`
	PreviousValue       string  `json:"previousValue,omitempty"`
}

type MarketOption struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	CpcCode      string `json:"cpcCode,omitempty"`
	HasCoreJobs  bool   `json:"hasCoreJobs"`
	CoreJobCount int    `json:"coreJobCount"`
}

type MarketMetrics struct {
	TAM  string `json:"tam,omitempty"`
	CAGR string `json:"cagr,omitempty"`
}

type MarketCriteria struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Severity    string `json:"severity"`
	Description string `json:"description"`
	Sources     string `json:"sources,omitempty"`
}

type Market struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	Type            string           `json:"type"`
	CoreJobToBeDone string           `json:"coreJobToBeDone"`
	Description     string           `json:"description,omitempty"`
	Metrics         MarketMetrics    `json:"metrics"`
	Criteria        []MarketCriteria `json:"criteria"`
	CommodityID     string           `json:"commodityId,omitempty"`
	CpcCode         string           `json:"cpcCode,omitempty"`
}

type Product struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	CommodityID string `json:"commodityId,omitempty"`
}

type Customer struct {
	ID                   string `json:"id"`
	Name                 string `json:"name"`
	InsightLevel         string `json:"insightLevel"`
	InsightCount         int    `json:"insightCount"`
	LastUpdate           string `json:"lastUpdate"`
	TotalUpdates         int    `json:"totalUpdates"`
	NewLearnings         int    `json:"newLearnings"`
	ConfirmedAssumptions string `json:"confirmedAssumptions"`
	LatestInsight        string `json:"latestInsight"`
}

type UnspscClassOption struct {
	Value       string `json:"value"`
	Label       string `json:"label"`
	ClassID     string `json:"classId"`
	FamilyName  string `json:"familyName"`
	FamilyID    string `json:"familyId"`
	SegmentName string `json:"segmentName"`
	SegmentID   string `json:"segmentId"`
}

type UnspscClassRef struct {
	Value   string `json:"value"`
	Label   string `json:"label"`
	ClassID string `json:"classId"`
}

type UnspscFamilyGroup struct {
	FamilyName string           `json:"familyName"`
	FamilyID   string           `json:"familyId"`
	Classes    []UnspscClassRef `json:"classes"`
}

type UnspscSegmentGroup struct {
	SegmentName string                        `json:"segmentName"`
	SegmentID   string                        `json:"segmentId"`
	Families    map[string]*UnspscFamilyGroup `json:"families"`
}

type UnspscCommodityOption struct {
	Value       string `json:"value"`
	Label       string `json:"label"`
	CommodityID string `json:"commodityId"`
}
