// Package manifest reads source documents from a YAML file.
//
//	documents:
//	  - id: abc123
//	    subtitle_url: https://captions.example.org/abc123.vtt
//	    title: Sermão do Monte
//	    metadata:
//	      speaker: João
package manifest
