package v1

import (
	"encoding/json"
	"io"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Clients are sloppy about how they send bodies: JSON, form
// encoding, and bare query strings all occur in the wild. Normalization
// happens here, once, at the boundary; everything past this point works with
// typed values.

type createPostRequest struct {
	Message string
}

type kindnessRequest struct {
	PostID string
	Token  string
}

// bindCreatePost accepts {"message": ...} with "content" as an accepted
// alias, from a JSON or form body.
func bindCreatePost(c *gin.Context) createPostRequest {
	fields := looseBody(c)
	message := fields["message"]
	if message == "" {
		message = fields["content"]
	}
	return createPostRequest{Message: message}
}

// bindKindness pulls post_id/token out of the body, falling back to query
// parameters when the body carries nothing usable.
func bindKindness(c *gin.Context) kindnessRequest {
	fields := looseBody(c)
	req := kindnessRequest{
		PostID: fields["post_id"],
		Token:  fields["token"],
	}
	if req.PostID == "" {
		req.PostID = c.Query("post_id")
	}
	if req.Token == "" {
		req.Token = c.Query("token")
	}
	return req
}

// looseBody flattens the request body into string fields regardless of
// whether it arrived as JSON, a form, or a raw query-string payload.
// JSON numbers are rendered back to their decimal form so "post_id": 7 and
// "post_id": "7" are equivalent.
func looseBody(c *gin.Context) map[string]string {
	fields := map[string]string{}

	raw, err := io.ReadAll(c.Request.Body)
	if err != nil || len(raw) == 0 {
		return fields
	}

	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err == nil {
		for k, v := range decoded {
			switch value := v.(type) {
			case string:
				fields[k] = value
			case float64:
				fields[k] = strconv.FormatFloat(value, 'f', -1, 64)
			case bool:
				fields[k] = strconv.FormatBool(value)
			}
		}
		return fields
	}

	// Form-encoded or query-string style bodies.
	parsed, err := url.ParseQuery(string(raw))
	if err != nil {
		return fields
	}
	for k, vs := range parsed {
		if len(vs) > 0 {
			fields[k] = vs[0]
		}
	}
	return fields
}
