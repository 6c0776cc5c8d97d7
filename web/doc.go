// Package web serves the browser playground for gridpath.
//
// What:
//
//   - A single in-memory board per server: paint obstacles, start a
//     traversal, reset for a new game. The board's lifetime is one session;
//     nothing is persisted.
//   - REST API (gorilla/mux):
//     GET  /            playground page
//     GET  /api/board   board snapshot
//     POST /api/cells   paint or erase one obstacle (idle only)
//     POST /api/run     run a traversal
//     POST /api/reset   new game, optionally with new dimensions
//     GET  /ws          live event feed
//   - WebSocket hub (gorilla/websocket): every explored cell, the discovered
//     route, and the final result are broadcast as events while a run
//     executes, so the page can animate the search.
//
// Concurrency:
//
// A single mutex serializes all board access. A traversal runs to completion
// while holding it, so the board is exclusively owned for the whole run;
// edits and snapshots queue behind it. Editing requests received mid-run are
// rejected with 409.
package web
