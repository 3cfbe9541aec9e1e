package entities

import "time"

type CIType string

const (
	CITypeServer      CIType = "server"
	CITypeWorkstation CIType = "workstation"
	CITypeNetwork     CIType = "network"
	CITypeStorage     CIType = "storage"
	CITypeSoftware    CIType = "software"
	CITypeApplication CIType = "application"
	CITypeDatabase    CIType = "database"
	CITypeService     CIType = "service"
	CITypeOther       CIType = "other"
)

func (t CIType) Valid() bool {
	switch t {
	case CITypeServer, CITypeWorkstation, CITypeNetwork, CITypeStorage,
		CITypeSoftware, CITypeApplication, CITypeDatabase, CITypeService, CITypeOther:
		return true
	}
	return false
}

type CIStatus string

const (
	CIStatusActive        CIStatus = "active"
	CIStatusInactive      CIStatus = "inactive"
	CIStatusInMaintenance CIStatus = "in_maintenance"
	CIStatusRetired       CIStatus = "retired"
)

func (s CIStatus) Valid() bool {
	switch s {
	case CIStatusActive, CIStatusInactive, CIStatusInMaintenance, CIStatusRetired:
		return true
	}
	return false
}

type CIEnvironment string

const (
	CIEnvironmentProduction  CIEnvironment = "production"
	CIEnvironmentStaging     CIEnvironment = "staging"
	CIEnvironmentDevelopment CIEnvironment = "development"
	CIEnvironmentTesting     CIEnvironment = "testing"
)

func (e CIEnvironment) Valid() bool {
	switch e {
	case CIEnvironmentProduction, CIEnvironmentStaging, CIEnvironmentDevelopment, CIEnvironmentTesting:
		return true
	}
	return false
}

// ConfigurationItem is an entry in the configuration-management data model.
//
// Storage model (DynamoDB):
//   - PK: id (uuid)
//   - ci_number ("CI-001") sequence-assigned, immutable.
type ConfigurationItem struct {
	ID          string        `json:"id"`
	CINumber    string        `json:"ci_number"`
	Name        string        `json:"name"`
	Type        CIType        `json:"type"`
	Status      CIStatus      `json:"status"`
	Environment CIEnvironment `json:"environment"`
	Description string        `json:"description"`
	AssetID     *string       `json:"asset_id,omitempty"`
	OwnerID     *string       `json:"owner_id,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

type ConfigurationItemView struct {
	ConfigurationItem
	Owner *UserRef `json:"owner,omitempty"`
}
