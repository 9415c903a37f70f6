package permissions

import "github.com/narthia/jira-client/client"

// Permission is one entry of a mypermissions response.
type Permission struct {
	ID             string `json:"id"`
	Key            string `json:"key"`
	Name           string `json:"name"`
	Type           string `json:"type"`
	Description    string `json:"description,omitempty"`
	HavePermission bool   `json:"havePermission"`
}

type MyPermissionsResponse struct {
	Permissions map[string]Permission `json:"permissions"`
}

// GlobalPermission is one entry of the global permission catalog.
type GlobalPermission struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
}

type AllPermissionsResponse struct {
	Permissions map[string]GlobalPermission `json:"permissions"`
}

type GetMyPermissionsParams struct {
	// Permissions are the permission keys to check, e.g. BROWSE_PROJECTS.
	Permissions   []string
	ProjectKey    string
	IssueKey      string
	Authorization string
	Options       *client.CallOptions
}

type myPermissionsQuery struct {
	Permissions []string `url:"permissions,omitempty,comma"`
	ProjectKey  string   `url:"projectKey,omitempty"`
	IssueKey    string   `url:"issueKey,omitempty"`
}

type GetAllPermissionsParams struct {
	Authorization string
	Options       *client.CallOptions
}
