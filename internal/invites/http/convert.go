package http

import (
	"github.com/lodgeline/lodgeline/internal/invites/domain"
	"github.com/lodgeline/lodgeline/pkg/invitesdk"
)

func toWireInvite(c domain.InviteCode) invitesdk.InviteCode {
	return invitesdk.InviteCode{
		ID:              c.ID,
		Code:            c.Code,
		PropertyID:      c.PropertyID,
		LandlordID:      c.LandlordID,
		UnitID:          c.UnitID,
		RestrictedEmail: c.RestrictedEmail,
		Status:          string(c.Status),
		ExpiresAt:       c.ExpiresAt,
		UsedAt:          c.UsedAt,
		UsedBy:          c.UsedBy,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}

func toWireInvites(cs []domain.InviteCode) []invitesdk.InviteCode {
	out := make([]invitesdk.InviteCode, len(cs))
	for i, c := range cs {
		out[i] = toWireInvite(c)
	}
	return out
}

func toWireTenancy(t domain.Tenancy) invitesdk.Tenancy {
	return invitesdk.Tenancy{
		ID:           t.ID,
		PropertyID:   t.PropertyID,
		UnitID:       t.UnitID,
		TenantID:     t.TenantID,
		InviteCodeID: t.InviteCodeID,
		Status:       string(t.Status),
		StartDate:    t.StartDate,
		EndDate:      t.EndDate,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}

func toWireTenancies(ts []domain.Tenancy) []invitesdk.Tenancy {
	out := make([]invitesdk.Tenancy, len(ts))
	for i, t := range ts {
		out[i] = toWireTenancy(t)
	}
	return out
}

func toWireProperty(p domain.Property) invitesdk.Property {
	return invitesdk.Property{
		ID:         p.ID,
		LandlordID: p.LandlordID,
		Name:       p.Name,
		Address:    p.Address,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

func toWireProperties(ps []domain.Property) []invitesdk.Property {
	out := make([]invitesdk.Property, len(ps))
	for i, p := range ps {
		out[i] = toWireProperty(p)
	}
	return out
}
