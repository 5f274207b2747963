package domain

import "strings"

type MemberRole string

const (
	RoleAdmin  MemberRole = "admin"
	RoleLeader MemberRole = "leader"
	RoleMember MemberRole = "member"
)

func (r MemberRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleLeader, RoleMember:
		return true
	}
	return false
}

type MemberStatus string

const (
	MemberStatusOnline  MemberStatus = "online"
	MemberStatusOffline MemberStatus = "offline"
)

type TeamMember struct {
	ID     string       `json:"id"`
	Name   string       `json:"name"`
	Email  string       `json:"email,omitempty"`
	Role   MemberRole   `json:"role"`
	Status MemberStatus `json:"status"`
	Avatar string       `json:"avatar,omitempty"`
}

func (m TeamMember) GetID() string { return m.ID }

func (m TeamMember) WithID(id string) TeamMember {
	m.ID = id
	return m
}

func (m TeamMember) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return invalid("name", "obrigatório")
	}
	if !m.Role.Valid() {
		return invalid("role", "deve ser admin, leader ou member")
	}
	if m.Status != MemberStatusOnline && m.Status != MemberStatusOffline {
		return invalid("status", "deve ser online ou offline")
	}
	return nil
}
