package deepseek

import "context"

// IDeepSeek defines the interface for an OpenAI-compatible chat completion client.
// DeepSeek and Qwen (DashScope compatible mode) both speak this protocol.
type IDeepSeek interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
	Model() string
}
