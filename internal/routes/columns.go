package routes

import (
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rmorlok/graphbrowser/internal/graph"
)

const emptyCell = "-"

// Column is a table column for a resource kind.
type Column struct {
	Key   string `json:"key"`
	Title string `json:"title"`
}

// Row is one table row keyed by column key.
type Row map[string]string

var columnsByKind = map[graph.Kind][]Column{
	graph.KindSites: {
		{Key: "name", Title: "Name"},
		{Key: "url", Title: "URL"},
		{Key: "created", Title: "Created Date"},
	},
	graph.KindDrives:     driveColumns,
	graph.KindMyDrives:   driveColumns,
	graph.KindSiteDrives: driveColumns,
	graph.KindContainers: {
		{Key: "id", Title: "ID"},
		{Key: "container_type_id", Title: "Container Type"},
		{Key: "name", Title: "Name"},
		{Key: "status", Title: "Status"},
		{Key: "storage_used", Title: "Storage Used"},
		{Key: "created", Title: "Created Date"},
	},
	graph.KindContainerTypes: {
		{Key: "id", Title: "ID"},
		{Key: "name", Title: "Name"},
		{Key: "description", Title: "Description"},
	},
	graph.KindContainerPermissions: {
		{Key: "id", Title: "ID"},
		{Key: "roles", Title: "Roles"},
		{Key: "granted_to", Title: "Granted To"},
	},
	graph.KindUsers: {
		{Key: "name", Title: "Name"},
		{Key: "upn", Title: "User Principal Name"},
		{Key: "job_title", Title: "Job Title"},
		{Key: "department", Title: "Department"},
		{Key: "office", Title: "Office"},
		{Key: "mail", Title: "Email"},
	},
}

var driveColumns = []Column{
	{Key: "name", Title: "Name"},
	{Key: "type", Title: "Type"},
	{Key: "url", Title: "URL"},
	{Key: "owner", Title: "Owner"},
	{Key: "created", Title: "Created Date"},
}

func ColumnsFor(kind graph.Kind) []Column {
	return columnsByKind[kind]
}

func cell(s string) string {
	if strings.TrimSpace(s) == "" {
		return emptyCell
	}
	return s
}

func dateCell(t *time.Time) string {
	if t == nil || t.IsZero() {
		return emptyCell
	}
	return t.Format("2006-01-02")
}

// ownerLabel prefixes non-user owners with what they are.
func ownerLabel(o *graph.IdentitySet) string {
	switch {
	case o == nil:
		return emptyCell
	case o.User != nil && o.User.DisplayName != "":
		return o.User.DisplayName
	case o.Group != nil && o.Group.DisplayName != "":
		return "Group: " + o.Group.DisplayName
	case o.Application != nil && o.Application.DisplayName != "":
		return "App: " + o.Application.DisplayName
	case o.Device != nil && o.Device.DisplayName != "":
		return "Device: " + o.Device.DisplayName
	default:
		return emptyCell
	}
}

func storageCell(bytes *int64) string {
	if bytes == nil || *bytes < 0 {
		return emptyCell
	}
	return humanize.Bytes(uint64(*bytes))
}

// ProjectRow renders an item into its table row. Unknown item types produce an empty row.
func ProjectRow(item any) Row {
	switch v := item.(type) {
	case *graph.Site:
		return Row{
			"name":    cell(v.Label()),
			"url":     cell(v.WebUrl),
			"created": dateCell(v.CreatedDateTime),
		}
	case *graph.Drive:
		return Row{
			"name":    cell(v.Name),
			"type":    cell(v.DriveType),
			"url":     cell(v.WebUrl),
			"owner":   ownerLabel(v.Owner),
			"created": dateCell(v.CreatedDateTime),
		}
	case *graph.Container:
		return Row{
			"id":                cell(v.Id),
			"container_type_id": cell(v.ContainerTypeId),
			"name":              cell(v.DisplayName),
			"status":            cell(v.Status),
			"storage_used":      storageCell(v.StorageUsedInBytes),
			"created":           dateCell(v.CreatedDateTime),
		}
	case *graph.ContainerType:
		return Row{
			"id":          cell(v.Id),
			"name":        cell(v.Name),
			"description": cell(v.Description),
		}
	case *graph.Permission:
		return Row{
			"id":         cell(v.Id),
			"roles":      cell(strings.Join(v.Roles, ", ")),
			"granted_to": cell(strings.Join(v.GrantedTo.DisplayNames(), ", ")),
		}
	case *graph.User:
		name := v.DisplayName
		if name == "" {
			name = "Unnamed User"
		}
		return Row{
			"name":       name,
			"upn":        cell(v.UserPrincipalName),
			"job_title":  cell(v.JobTitle),
			"department": cell(v.Department),
			"office":     cell(v.OfficeLocation),
			"mail":       cell(v.Mail),
		}
	default:
		return Row{}
	}
}
