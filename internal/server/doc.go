// Package server implements the MCP (Model Context Protocol) server for hex tiles.
//
// The server speaks JSON-RPC 2.0 over stdio and exposes the hex tile pipeline
// as tools, so an MCP client can cut tiles from rendered maps and inspect the
// results.
//
// # Protocol
//
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods: initialize, tools/list, tools/call and ping.
//
// # Available Tools
//
// Image information:
//   - image_load: Load image and get metadata
//   - image_dimensions: Get width and height
//   - image_sample_color: Get color and alpha at a pixel
//
// Tile operations:
//   - image_add_margin: Pad an image with a solid border
//   - hex_geometry: Compute crop, padding and hexagon vertices for a size
//   - hex_cut: Write <name>_hex.png next to a named source image
//
// # Image Caching
//
// Loaded images are cached by path for the lifetime of the process. hex_cut
// evicts the tile it writes so later reads see the new file.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with code
// -32000, message "Tool execution failed" and the Go error string as data.
// A missing source image for hex_cut is reported the same way.
package server
