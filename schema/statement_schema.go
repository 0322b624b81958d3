package schema

// StatementSchema is the draft-07 JSON Schema for serialized statements.
// It describes exactly the JSON this module emits: required id, actor,
// verb, and object, the four identifier shapes an actor may carry, the
// all-or-nothing score triple, and the timestamp and duration formats.
const StatementSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "$id": "https://github.com/seanpm2001/xapi/schema/statement.v1.json",
  "title": "Statement",
  "type": "object",
  "required": ["id", "actor", "verb", "object"],
  "additionalProperties": false,
  "properties": {
    "id": {"$ref": "#/definitions/uuid"},
    "actor": {"$ref": "#/definitions/actor"},
    "verb": {"$ref": "#/definitions/verb"},
    "object": {"$ref": "#/definitions/activity"},
    "result": {"$ref": "#/definitions/result"},
    "context": {"$ref": "#/definitions/context"},
    "timestamp": {"$ref": "#/definitions/timestamp"}
  },
  "definitions": {
    "uuid": {
      "type": "string",
      "pattern": "^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$"
    },
    "iri": {
      "type": "string",
      "pattern": "^[A-Za-z][A-Za-z0-9+.-]*:.+"
    },
    "mailto": {
      "type": "string",
      "pattern": "^mailto:[^@]+@.+"
    },
    "sha1sum": {
      "type": "string",
      "pattern": "^[0-9a-f]{40}$"
    },
    "languageMap": {
      "type": "object",
      "minProperties": 1,
      "additionalProperties": {"type": "string", "minLength": 1}
    },
    "extensions": {
      "type": "object",
      "minProperties": 1,
      "additionalProperties": {"type": "string", "minLength": 1}
    },
    "account": {
      "type": "object",
      "required": ["homePage", "name"],
      "additionalProperties": false,
      "properties": {
        "homePage": {"$ref": "#/definitions/iri"},
        "name": {"type": "string", "minLength": 1}
      }
    },
    "actor": {
      "oneOf": [
        {"$ref": "#/definitions/agent"},
        {"$ref": "#/definitions/group"}
      ]
    },
    "agent": {
      "type": "object",
      "required": ["objectType"],
      "additionalProperties": false,
      "properties": {
        "objectType": {"const": "Agent"},
        "name": {"type": "string", "minLength": 1},
        "mbox": {"$ref": "#/definitions/mailto"},
        "mbox_sha1sum": {"$ref": "#/definitions/sha1sum"},
        "openid": {"$ref": "#/definitions/iri"},
        "account": {"$ref": "#/definitions/account"}
      },
      "oneOf": [
        {"required": ["mbox"]},
        {"required": ["mbox_sha1sum"]},
        {"required": ["openid"]},
        {"required": ["account"]},
        {
          "allOf": [
            {"not": {"required": ["mbox"]}},
            {"not": {"required": ["mbox_sha1sum"]}},
            {"not": {"required": ["openid"]}},
            {"not": {"required": ["account"]}}
          ]
        }
      ]
    },
    "group": {
      "type": "object",
      "required": ["objectType"],
      "additionalProperties": false,
      "properties": {
        "objectType": {"const": "Group"},
        "name": {"type": "string", "minLength": 1},
        "mbox": {"$ref": "#/definitions/mailto"},
        "mbox_sha1sum": {"$ref": "#/definitions/sha1sum"},
        "openid": {"$ref": "#/definitions/iri"},
        "account": {"$ref": "#/definitions/account"},
        "member": {
          "type": "array",
          "minItems": 1,
          "items": {"$ref": "#/definitions/agent"}
        }
      },
      "oneOf": [
        {"required": ["mbox"]},
        {"required": ["mbox_sha1sum"]},
        {"required": ["openid"]},
        {"required": ["account"]},
        {
          "allOf": [
            {"not": {"required": ["mbox"]}},
            {"not": {"required": ["mbox_sha1sum"]}},
            {"not": {"required": ["openid"]}},
            {"not": {"required": ["account"]}}
          ],
          "required": ["member"]
        }
      ]
    },
    "verb": {
      "type": "object",
      "required": ["id", "display"],
      "additionalProperties": false,
      "properties": {
        "id": {"$ref": "#/definitions/iri"},
        "display": {"$ref": "#/definitions/languageMap"}
      }
    },
    "activity": {
      "type": "object",
      "required": ["objectType", "id"],
      "additionalProperties": false,
      "properties": {
        "objectType": {"const": "Activity"},
        "id": {"$ref": "#/definitions/iri"},
        "definition": {"$ref": "#/definitions/activityDefinition"}
      }
    },
    "activityDefinition": {
      "type": "object",
      "required": ["name", "description", "type"],
      "additionalProperties": false,
      "properties": {
        "name": {"$ref": "#/definitions/languageMap"},
        "description": {"$ref": "#/definitions/languageMap"},
        "type": {"$ref": "#/definitions/iri"},
        "moreInfo": {"$ref": "#/definitions/iri"},
        "interactionType": {
          "enum": [
            "true-false", "choice", "fill-in", "long-fill-in", "matching",
            "performance", "sequencing", "likert", "numeric", "other"
          ]
        },
        "correctResponsesPattern": {
          "type": "array",
          "minItems": 1,
          "items": {"type": "string", "minLength": 1}
        },
        "choices": {"$ref": "#/definitions/interactionComponents"},
        "scale": {"$ref": "#/definitions/interactionComponents"},
        "source": {"$ref": "#/definitions/interactionComponents"},
        "target": {"$ref": "#/definitions/interactionComponents"},
        "steps": {"$ref": "#/definitions/interactionComponents"},
        "extensions": {"$ref": "#/definitions/extensions"}
      },
      "dependencies": {
        "correctResponsesPattern": ["interactionType"],
        "choices": ["interactionType"],
        "scale": ["interactionType"],
        "source": ["interactionType"],
        "target": ["interactionType"],
        "steps": ["interactionType"]
      }
    },
    "interactionComponents": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["id", "description"],
        "additionalProperties": false,
        "properties": {
          "id": {"type": "string", "minLength": 1},
          "description": {"$ref": "#/definitions/languageMap"}
        }
      }
    },
    "result": {
      "type": "object",
      "minProperties": 1,
      "additionalProperties": false,
      "properties": {
        "score": {"$ref": "#/definitions/score"},
        "success": {"type": "boolean"},
        "completion": {"type": "boolean"},
        "response": {"type": "string", "minLength": 1},
        "duration": {"$ref": "#/definitions/duration"},
        "extensions": {"$ref": "#/definitions/extensions"}
      }
    },
    "score": {
      "type": "object",
      "required": ["scaled"],
      "additionalProperties": false,
      "properties": {
        "scaled": {"type": "number", "minimum": -1, "maximum": 1},
        "raw": {"type": "number"},
        "min": {"type": "number"},
        "max": {"type": "number"}
      },
      "dependencies": {
        "raw": ["min", "max"],
        "min": ["raw", "max"],
        "max": ["raw", "min"]
      }
    },
    "context": {
      "type": "object",
      "minProperties": 1,
      "additionalProperties": false,
      "properties": {
        "registration": {"$ref": "#/definitions/uuid"},
        "instructor": {"$ref": "#/definitions/actor"},
        "team": {"$ref": "#/definitions/actor"},
        "contextActivities": {"$ref": "#/definitions/contextActivities"},
        "revision": {"type": "string", "minLength": 1},
        "platform": {"type": "string", "minLength": 1},
        "language": {"type": "string", "minLength": 1},
        "extensions": {"$ref": "#/definitions/extensions"}
      }
    },
    "contextActivities": {
      "type": "object",
      "minProperties": 1,
      "additionalProperties": false,
      "properties": {
        "parent": {"$ref": "#/definitions/activityRefs"},
        "grouping": {"$ref": "#/definitions/activityRefs"},
        "category": {"$ref": "#/definitions/activityRefs"},
        "other": {"$ref": "#/definitions/activityRefs"}
      }
    },
    "activityRefs": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["id"],
        "additionalProperties": false,
        "properties": {
          "id": {"$ref": "#/definitions/iri"}
        }
      }
    },
    "duration": {
      "type": "string",
      "pattern": "^P(\\d+Y)?(\\d+M)?(\\d+W)?(\\d+D)?(T(\\d+H)?(\\d+M)?(\\d+(\\.\\d+)?S)?)?$"
    },
    "timestamp": {
      "type": "string",
      "pattern": "^\\d{4}-\\d{2}-\\d{2}T\\d{2}:\\d{2}:\\d{2}\\.\\d{3}[+-]\\d{2}:\\d{2}$"
    }
  }
}`
