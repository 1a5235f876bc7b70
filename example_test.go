package desktopapi_test

import (
	"context"
	"fmt"
	"io"

	desktopapi "github.com/zed-industries/desktop-api-bindings"
)

type settingsHost struct {
	desktopapi.UnimplementedHandler
	values map[string]string
}

func (h *settingsHost) GetSettingsProperty(_ context.Context, req *desktopapi.GetSettingsPropertyRequest) (*desktopapi.GetSettingsPropertyResponse, error) {
	v, ok := h.values[req.GetKey()]
	if !ok {
		return &desktopapi.GetSettingsPropertyResponse{IsDefault: desktopapi.Ptr(true)}, nil
	}
	return &desktopapi.GetSettingsPropertyResponse{JsonBlob: desktopapi.Ptr(v)}, nil
}

func (h *settingsHost) UpdateSettingsProperty(_ context.Context, req *desktopapi.UpdateSettingsPropertyRequest) error {
	if req.Value == nil {
		delete(h.values, req.GetKey())
		return nil
	}
	h.values[req.GetKey()] = req.GetValue()
	return nil
}

// Example wires a Client to a Host over in-memory pipes. A real caller
// would use a socket, the host's stdio, or DialWebSocket.
func Example() {
	c2hR, c2hW := io.Pipe()
	h2cR, h2cW := io.Pipe()
	host := desktopapi.NewHost(&settingsHost{values: map[string]string{}}, desktopapi.NewStreamTransport(h2cW, c2hR))
	client := desktopapi.NewClient(desktopapi.NewStreamTransport(c2hW, h2cR))
	defer host.Close()
	defer client.Close()

	ctx := context.Background()
	update, _ := desktopapi.NewUpdateSettingsPropertyRequest("font_size", 14)
	if err := client.SendUpdateSettingsPropertyRequest(ctx, update); err != nil {
		fmt.Println("update:", err)
		return
	}
	resp, err := client.SendGetSettingsPropertyRequest(ctx, desktopapi.NewGetSettingsPropertyRequest("font_size"))
	if err != nil {
		fmt.Println("get:", err)
		return
	}
	var size int
	_ = resp.Decode(&size)
	fmt.Println("font_size =", size)

	_, err = client.SendReadFileRequest(ctx, &desktopapi.ReadFileRequest{Path: "/etc/hosts"})
	fmt.Println(err)

	// Output:
	// font_size = 14
	// ReadFile request failed: not implemented
}
