package model

// Role is a user's access level.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

// User represents a registered dashboard user.
// PasswordHash is a 64-char lowercase hex SHA-256 digest.
type User struct {
	ID           string `json:"id"`
	FullName     string `json:"full_name"`
	Email        string `json:"email"`
	PasswordHash string `json:"password_hash"`
	Role         Role   `json:"role"`
	VillageID    string `json:"village_id"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

// Village represents a village served by the dashboard.
type Village struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Population int     `json:"population"`
	Area       float64 `json:"area"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	CreatedAt  string  `json:"created_at"`
}

// AssetStatus is the operational state of an infrastructure asset.
// All transitions between valid statuses are allowed.
type AssetStatus string

const (
	AssetActive      AssetStatus = "active"
	AssetMaintenance AssetStatus = "maintenance"
	AssetInactive    AssetStatus = "inactive"
)

func (s AssetStatus) Valid() bool {
	return s == AssetActive || s == AssetMaintenance || s == AssetInactive
}

// InfrastructureAsset represents a physical installation in a village.
// HealthScore is always within [0,100].
type InfrastructureAsset struct {
	ID               string      `json:"id"`
	VillageID        string      `json:"village_id"`
	AssetType        string      `json:"asset_type"`
	Name             string      `json:"name"`
	Latitude         float64     `json:"latitude,omitempty"`
	Longitude        float64     `json:"longitude,omitempty"`
	InstallationDate string      `json:"installation_date,omitempty"`
	LastMaintenance  string      `json:"last_maintenance,omitempty"`
	HealthScore      float64     `json:"health_score"`
	Status           AssetStatus `json:"status"`
	CreatedAt        string      `json:"created_at"`
}

// SensorReading is an append-only measurement from an asset's sensor.
type SensorReading struct {
	ID           string  `json:"id"`
	AssetID      string  `json:"asset_id"`
	SensorType   string  `json:"sensor_type"`
	Value        float64 `json:"value"`
	Unit         string  `json:"unit"`
	Timestamp    string  `json:"timestamp"`
	QualityScore float64 `json:"quality_score"`
}

// MaintenancePrediction forecasts an asset failure.
// Resolution is one-way: once IsResolved is true it never reverts.
type MaintenancePrediction struct {
	ID                   string   `json:"id"`
	AssetID              string   `json:"asset_id"`
	PredictedFailureDate string   `json:"predicted_failure_date"` // YYYY-MM-DD
	FailureType          string   `json:"failure_type"`
	ConfidenceScore      float64  `json:"confidence_score"` // [0,1]
	EstimatedCost        float64  `json:"estimated_cost,omitempty"`
	PreventionActions    []string `json:"prevention_actions,omitempty"`
	IsResolved           bool     `json:"is_resolved"`
}

// IssueStatus is the lifecycle state of a citizen issue.
type IssueStatus string

const (
	IssueReported     IssueStatus = "reported"
	IssueAcknowledged IssueStatus = "acknowledged"
	IssueInProgress   IssueStatus = "in_progress"
	IssueResolved     IssueStatus = "resolved"
)

// issueOrder defines the forward-only issue lifecycle.
var issueOrder = map[IssueStatus]int{
	IssueReported:     0,
	IssueAcknowledged: 1,
	IssueInProgress:   2,
	IssueResolved:     3,
}

func (s IssueStatus) Valid() bool {
	_, ok := issueOrder[s]
	return ok
}

// CanTransition reports whether an issue may move from s to next.
// Only forward moves are allowed; same-state is a permitted no-op.
func (s IssueStatus) CanTransition(next IssueStatus) bool {
	from, ok1 := issueOrder[s]
	to, ok2 := issueOrder[next]
	return ok1 && ok2 && to >= from
}

// CitizenIssue is a problem reported by a user against their village.
// Upvotes are monotonically non-decreasing.
type CitizenIssue struct {
	ID         string      `json:"id"`
	VillageID  string      `json:"village_id"`
	ReportedBy string      `json:"reported_by"`
	Title      string      `json:"title"`
	Category   string      `json:"category"`
	Priority   string      `json:"priority"`
	Status     IssueStatus `json:"status"`
	Upvotes    int         `json:"upvotes"`
	CreatedAt  string      `json:"created_at"`
}

// Proposal is a village-level item put to a vote.
type Proposal struct {
	ID             string `json:"id"`
	VillageID      string `json:"village_id"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	VotingDeadline string `json:"voting_deadline"`
	Status         string `json:"status"`
	CreatedAt      string `json:"created_at"`
}

// VoteType is a voter's choice on a proposal.
type VoteType string

const (
	VoteFor     VoteType = "for"
	VoteAgainst VoteType = "against"
	VoteAbstain VoteType = "abstain"
)

func (v VoteType) Valid() bool {
	return v == VoteFor || v == VoteAgainst || v == VoteAbstain
}

// Vote records one user's choice on one proposal.
// At most one vote exists per (ProposalID, UserID); a new vote replaces the prior one.
type Vote struct {
	ID         string   `json:"id"`
	ProposalID string   `json:"proposal_id"`
	UserID     string   `json:"user_id"`
	VoteType   VoteType `json:"vote_type"`
	CreatedAt  string   `json:"created_at"`
}

// VoteResults tallies votes on a proposal.
type VoteResults struct {
	For     int `json:"for"`
	Against int `json:"against"`
	Abstain int `json:"abstain"`
}

// VoiceCommandLog is an append-only record of a recognized voice command.
type VoiceCommandLog struct {
	ID              string  `json:"id"`
	UserID          string  `json:"user_id"`
	Command         string  `json:"command"`
	Response        string  `json:"response"`
	ConfidenceScore float64 `json:"confidence_score"`
	CreatedAt       string  `json:"created_at"`
}

// ReportUrgency is the urgency of a standalone issue report.
type ReportUrgency string

const (
	UrgencyLow      ReportUrgency = "low"
	UrgencyMedium   ReportUrgency = "medium"
	UrgencyHigh     ReportUrgency = "high"
	UrgencyCritical ReportUrgency = "critical"
)

func (u ReportUrgency) Valid() bool {
	return u == UrgencyLow || u == UrgencyMedium || u == UrgencyHigh || u == UrgencyCritical
}

// ReportStatus is the lifecycle state of a standalone issue report.
type ReportStatus string

const (
	ReportPending  ReportStatus = "pending"
	ReportInReview ReportStatus = "in-review"
	ReportAssigned ReportStatus = "assigned"
	ReportResolved ReportStatus = "resolved"
	ReportClosed   ReportStatus = "closed"
)

var reportOrder = map[ReportStatus]int{
	ReportPending:  0,
	ReportInReview: 1,
	ReportAssigned: 2,
	ReportResolved: 3,
	ReportClosed:   4,
}

func (s ReportStatus) Valid() bool {
	_, ok := reportOrder[s]
	return ok
}

// CanTransition reports whether a report may move from s to next (forward only).
func (s ReportStatus) CanTransition(next ReportStatus) bool {
	from, ok1 := reportOrder[s]
	to, ok2 := reportOrder[next]
	return ok1 && ok2 && to >= from
}

// IssueReport is a standalone citizen report collected by a separate intake
// feature. It is deliberately not linked to the Village/User graph and keeps
// its own lifecycle; the camelCase field names come from its intake form.
type IssueReport struct {
	ID            string        `json:"id"`
	ReporterName  string        `json:"reporterName"`
	ReporterPhone string        `json:"reporterPhone"`
	ReporterEmail string        `json:"reporterEmail"`
	Title         string        `json:"title"`
	Description   string        `json:"description"`
	Category      string        `json:"category"`
	City          string        `json:"city"`
	Urgency       ReportUrgency `json:"urgency"`
	Status        ReportStatus  `json:"status"`
	CreatedAt     string        `json:"createdAt"`
}

// Session is the single persisted record of the authenticated identity.
// It is stored under its own key, never inside a collection.
type Session struct {
	UserID    string `json:"userId"`
	Email     string `json:"email"`
	Role      Role   `json:"role"`
	ExpiresAt string `json:"expiresAt"`
}
