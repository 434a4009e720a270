// Package config loads runtime configuration for the credential tools.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or --config, or for genpassword
//     by the MORDOR_CONFIG environment variable (see ConfigPathFromEnv).
//  3. Command-line flags such as -d/--database-file, applied by the caller.
//
// # JSON schema
//
//	{
//	  "database_file": "/var/web_server/mordor/mordor.db",
//	  "argon2": {
//	    "memory": 65536,
//	    "iterations": 3,
//	    "parallelism": 4,
//	    "salt_length": 16,
//	    "key_length": 32
//	  }
//	}
//
// Note: MORDOR_CONFIG only names the file; settings themselves are never
// read from the environment.
package config
