package toolset

import (
	"github.com/futuretea/acp-mcp-server/pkg/client/acp"
	"github.com/futuretea/acp-mcp-server/pkg/toolset/handler"
)

// ValidateACPClient validates and returns the console client.
// Returns ErrACPNotConfigured if the client is nil or of another type.
func ValidateACPClient(client interface{}) (*acp.Client, error) {
	acpClient, ok := client.(*acp.Client)
	if !ok || acpClient == nil {
		return nil, handler.ErrACPNotConfigured
	}
	return acpClient, nil
}
