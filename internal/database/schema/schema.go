package schema

import (
	"fmt"
	"strings"
)

// SchemaSQL contains the web-side schema initialization script. The
// game tables (users, users_inventory, server_loots) belong to the game
// server and are only created here for fresh development databases; in
// production they already exist.
var SchemaSQL = `
-- Game tables (normally owned by the game server)

CREATE TABLE IF NOT EXISTS users (
    u_id SERIAL PRIMARY KEY,
    u_name VARCHAR(64) UNIQUE NOT NULL,
    u_password VARCHAR(128) NOT NULL,
    u_money INTEGER NOT NULL DEFAULT 0,
    u_donate INTEGER NOT NULL DEFAULT 0,
    u_level INTEGER NOT NULL DEFAULT 1,
    u_admin INTEGER NOT NULL DEFAULT 0,
    u_online INTEGER NOT NULL DEFAULT 0,
    u_last_action TIMESTAMP
);

CREATE TABLE IF NOT EXISTS server_loots (
    id SERIAL PRIMARY KEY,
    name VARCHAR(100) NOT NULL,
    type VARCHAR(50) NOT NULL DEFAULT '',
    price INTEGER NOT NULL DEFAULT 0,
    quality INTEGER NOT NULL DEFAULT 100
);

CREATE TABLE IF NOT EXISTS users_inventory (
    u_id INTEGER PRIMARY KEY REFERENCES users(u_id) ON DELETE CASCADE` + slotColumnsDDL() + `
);

-- Web companion tables

CREATE TABLE IF NOT EXISTS web_cases (
    id INTEGER PRIMARY KEY,
    name VARCHAR(100) NOT NULL,
    description TEXT,
    image VARCHAR(100),
    rarity VARCHAR(50),
    price_money INTEGER NOT NULL DEFAULT 0,
    price_donate INTEGER NOT NULL DEFAULT 0,
    min_price INTEGER NOT NULL DEFAULT 0,
    max_price INTEGER NOT NULL DEFAULT 0,
    type_contains VARCHAR(50)
);

CREATE TABLE IF NOT EXISTS web_ip_blocks (
    ip VARCHAR(45) PRIMARY KEY,
    failed_attempts INTEGER NOT NULL DEFAULT 0,
    attempted_login VARCHAR(64),
    temp_blocked_until TIMESTAMPTZ,
    permanently_blocked BOOLEAN NOT NULL DEFAULT FALSE
);

CREATE TABLE IF NOT EXISTS web_news (
    id SERIAL PRIMARY KEY,
    title VARCHAR(200) NOT NULL,
    content TEXT NOT NULL,
    author_id INTEGER NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_web_news_created_at ON web_news (created_at DESC);
`

// slotColumnsDDL renders the 50 inventory slot columns so the count
// stays in one place.
func slotColumnsDDL() string {
	var b strings.Builder
	for i := 1; i <= 50; i++ {
		fmt.Fprintf(&b, ",\n    u_i_slot_%d VARCHAR(64)", i)
	}
	return b.String()
}
