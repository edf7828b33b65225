package models

import "time"

// Member statuses.
const (
	MemberStatusActive  = "active"
	MemberStatusPassive = "passive"
)

var memberStatuses = []string{MemberStatusActive, MemberStatusPassive}

// Membership types.
const (
	MembershipTypeUye     = "uye"
	MembershipTypeDelege  = "delege"
	MembershipTypeYonetim = "yonetim"
)

var membershipTypes = []string{MembershipTypeUye, MembershipTypeDelege, MembershipTypeYonetim}

// Dues payment statuses.
const (
	DuesStatusPaid    = "odendi"
	DuesStatusPending = "beklemede"
	DuesStatusOverdue = "gecikmis"
)

var duesStatuses = []string{DuesStatusPaid, DuesStatusPending, DuesStatusOverdue}

// WorkInfo describes where a member works.
type WorkInfo struct {
	Workplace string `bson:"workplace" json:"workplace"`
	Position  string `bson:"position"  json:"position"`
	City      string `bson:"city"      json:"city,omitempty"`
}

// MembershipInfo carries union-membership administrative state.
type MembershipInfo struct {
	Type        string     `bson:"type"                json:"type"`
	DuesStatus  string     `bson:"duesStatus"          json:"dues_status"`
	MemberSince *time.Time `bson:"memberSince,omitempty" json:"member_since,omitempty"`
}

// Member is a union member record. De-duplicated by email.
type Member struct {
	Base           `bson:",inline"`
	Name           string         `bson:"name"           json:"name"`
	Email          string         `bson:"email"          json:"email"`
	Phone          string         `bson:"phone"          json:"phone,omitempty"`
	WorkInfo       WorkInfo       `bson:"workInfo"       json:"work_info"`
	MembershipInfo MembershipInfo `bson:"membershipInfo" json:"membership_info"`
	Status         string         `bson:"status"         json:"status"`
}

func (m *Member) ApplyDefaults(now time.Time) {
	if m.MembershipInfo.Type == "" {
		m.MembershipInfo.Type = MembershipTypeUye
	}
	if m.MembershipInfo.DuesStatus == "" {
		m.MembershipInfo.DuesStatus = DuesStatusPending
	}
	if m.Status == "" {
		m.Status = MemberStatusActive
	}
	m.Touch(now)
}

func (m *Member) Validate() error {
	return firstErr(
		requireString("email", m.Email),
		requireString("name", m.Name),
		requireEnum("status", m.Status, memberStatuses),
		requireEnum("membershipInfo.type", m.MembershipInfo.Type, membershipTypes),
		requireEnum("membershipInfo.duesStatus", m.MembershipInfo.DuesStatus, duesStatuses),
	)
}
