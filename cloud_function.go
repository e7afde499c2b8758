package newsbrief

import (
	"github.com/GoogleCloudPlatform/functions-framework-go/functions"

	"github.com/newsbrief/newsbrief/internal/transport/server"
)

func init() {
	// Register the HTTP function for Cloud Functions deployments
	functions.HTTP("SummarizeArticle", server.HandleRequest)
}
