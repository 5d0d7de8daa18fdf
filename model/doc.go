// Package model defines the LLM collaborator contract. ShopMesh treats the
// model as an opaque function from a message list to reply text: the core
// assembles the list (optional system preamble naming the resolved identity,
// truncated history, new user turn) and extracts the reply, nothing more.
// Provider adapters live in sub-packages (model/openai, model/anthropic).
package model
