package graph

import (
	"time"
)

// Searchable items expose the text fields matched by client-side search.
type Searchable interface {
	SearchFields() []string
}

type Site struct {
	Id                   string     `json:"id"`
	Name                 string     `json:"name,omitempty"`
	DisplayName          string     `json:"displayName,omitempty"`
	Description          string     `json:"description,omitempty"`
	WebUrl               string     `json:"webUrl,omitempty"`
	CreatedDateTime      *time.Time `json:"createdDateTime,omitempty"`
	LastModifiedDateTime *time.Time `json:"lastModifiedDateTime,omitempty"`
}

// Label is the name shown for the site. Root sites sometimes have no display name.
func (s *Site) Label() string {
	if s.DisplayName != "" {
		return s.DisplayName
	}

	return s.Name
}

func (s *Site) SearchFields() []string {
	return []string{s.DisplayName, s.Name, s.WebUrl, s.Description}
}

type Identity struct {
	Id          string `json:"id,omitempty"`
	DisplayName string `json:"displayName,omitempty"`
	Email       string `json:"email,omitempty"`
}

// IdentitySet is the Graph identitySet. Any combination of the members may be present.
type IdentitySet struct {
	User        *Identity `json:"user,omitempty"`
	Group       *Identity `json:"group,omitempty"`
	Application *Identity `json:"application,omitempty"`
	Device      *Identity `json:"device,omitempty"`
	SiteUser    *Identity `json:"siteUser,omitempty"`
	SiteGroup   *Identity `json:"siteGroup,omitempty"`
}

func (s *IdentitySet) members() []*Identity {
	if s == nil {
		return nil
	}

	return []*Identity{s.User, s.Group, s.Application, s.Device, s.SiteUser, s.SiteGroup}
}

// DisplayNames returns the non-empty display names in user, group, application, device order.
func (s *IdentitySet) DisplayNames() []string {
	var names []string
	for _, m := range s.members() {
		if m != nil && m.DisplayName != "" {
			names = append(names, m.DisplayName)
		}
	}

	return names
}

// Label is the first display name, or the first email, or empty.
func (s *IdentitySet) Label() string {
	if names := s.DisplayNames(); len(names) > 0 {
		return names[0]
	}

	for _, m := range s.members() {
		if m != nil && m.Email != "" {
			return m.Email
		}
	}

	return ""
}

type Quota struct {
	Total     int64  `json:"total,omitempty"`
	Used      int64  `json:"used,omitempty"`
	Remaining int64  `json:"remaining,omitempty"`
	State     string `json:"state,omitempty"`
}

type Drive struct {
	Id              string       `json:"id"`
	Name            string       `json:"name,omitempty"`
	Description     string       `json:"description,omitempty"`
	DriveType       string       `json:"driveType,omitempty"`
	WebUrl          string       `json:"webUrl,omitempty"`
	CreatedDateTime *time.Time   `json:"createdDateTime,omitempty"`
	Owner           *IdentitySet `json:"owner,omitempty"`
	Quota           *Quota       `json:"quota,omitempty"`
}

func (d *Drive) SearchFields() []string {
	return append([]string{d.Name, d.DriveType}, d.Owner.DisplayNames()...)
}

type Container struct {
	Id                 string     `json:"id"`
	DisplayName        string     `json:"displayName,omitempty"`
	Description        string     `json:"description,omitempty"`
	ContainerTypeId    string     `json:"containerTypeId,omitempty"`
	Status             string     `json:"status,omitempty"`
	CreatedDateTime    *time.Time `json:"createdDateTime,omitempty"`
	StorageUsedInBytes *int64     `json:"storageUsedInBytes,omitempty"`
}

func (c *Container) SearchFields() []string {
	return []string{c.DisplayName, c.Description, c.ContainerTypeId}
}

type ContainerType struct {
	Id                    string     `json:"id"`
	Name                  string     `json:"name,omitempty"`
	Description           string     `json:"description,omitempty"`
	OwningAppId           string     `json:"owningAppId,omitempty"`
	BillingClassification string     `json:"billingClassification,omitempty"`
	CreatedDateTime       *time.Time `json:"createdDateTime,omitempty"`
}

func (c *ContainerType) SearchFields() []string {
	return []string{c.Name, c.Description, c.Id}
}

type User struct {
	Id                string `json:"id"`
	DisplayName       string `json:"displayName,omitempty"`
	UserPrincipalName string `json:"userPrincipalName,omitempty"`
	Mail              string `json:"mail,omitempty"`
	JobTitle          string `json:"jobTitle,omitempty"`
	Department        string `json:"department,omitempty"`
	OfficeLocation    string `json:"officeLocation,omitempty"`
}

func (u *User) SearchFields() []string {
	return []string{u.DisplayName, u.UserPrincipalName, u.Mail}
}

// Permission is a role assignment on a storage container.
type Permission struct {
	Id        string       `json:"id"`
	Roles     []string     `json:"roles,omitempty"`
	GrantedTo *IdentitySet `json:"grantedToV2,omitempty"`
}

func (p *Permission) SearchFields() []string {
	fields := make([]string, 0, len(p.Roles)+2)
	fields = append(fields, p.Roles...)
	return append(fields, p.GrantedTo.DisplayNames()...)
}
