// Package docs registers the OpenAPI document served at /swagger/doc.json.
// It is maintained by hand alongside the handler annotations.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/options": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Options"],
                "summary": "Selection Options",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Options"}},
                    "503": {"description": "Dataset not found", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            }
        },
        "/clusters/{cluster}/tournaments": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Options"],
                "summary": "Tournaments of a Cluster",
                "parameters": [{"type": "integer", "description": "Cluster ID", "name": "cluster", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"type": "string"}}},
                    "400": {"description": "Unknown cluster", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            }
        },
        "/overview": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Overview"],
                "summary": "Cluster Overview",
                "parameters": [
                    {"type": "integer", "description": "Cluster ID", "name": "cluster", "in": "query", "required": true},
                    {"type": "string", "description": "Tournament name", "name": "tournament", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.OverallView"}},
                    "400": {"description": "Unknown selection", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "503": {"description": "Dataset not found", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            }
        },
        "/overview/scatter": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Overview"],
                "summary": "Tournament Scatter by Cluster",
                "parameters": [
                    {"type": "string", "name": "tournament", "in": "query", "required": true},
                    {"type": "string", "name": "x", "in": "query", "required": true},
                    {"type": "string", "name": "y", "in": "query", "required": true}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.ScatterPlot"}}}
            }
        },
        "/overview/histogram": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Overview"],
                "summary": "Feature Distribution",
                "parameters": [
                    {"type": "integer", "name": "cluster", "in": "query", "required": true},
                    {"type": "string", "name": "tournament", "in": "query", "required": true},
                    {"type": "string", "name": "feature", "in": "query", "required": true}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Histogram"}}}
            }
        },
        "/teams/{team}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Teams"],
                "summary": "Team View",
                "parameters": [{"type": "string", "name": "team", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.TeamView"}}}
            }
        },
        "/teams/{team}/players": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Teams"],
                "summary": "Team Players",
                "parameters": [{"type": "string", "name": "team", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"type": "string"}}}}
            }
        },
        "/teams/{team}/scatter": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Teams"],
                "summary": "Team Scatter by Player",
                "parameters": [
                    {"type": "string", "name": "team", "in": "path", "required": true},
                    {"type": "string", "name": "x", "in": "query", "required": true},
                    {"type": "string", "name": "y", "in": "query", "required": true}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.ScatterPlot"}}}
            }
        },
        "/teams/{team}/series": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Teams"],
                "summary": "Team Metric Over Tournaments",
                "parameters": [
                    {"type": "string", "name": "team", "in": "path", "required": true},
                    {"type": "string", "name": "metric", "in": "query", "required": true}
                ],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.LineSeries"}}}}
            }
        },
        "/teams/{team}/players/{player}/series": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Teams"],
                "summary": "Player Metric Over Tournaments",
                "parameters": [
                    {"type": "string", "name": "team", "in": "path", "required": true},
                    {"type": "string", "name": "player", "in": "path", "required": true},
                    {"type": "string", "name": "metric", "in": "query", "required": true}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.LineSeries"}}}
            }
        },
        "/tournaments": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Tournaments"],
                "summary": "List Tournaments",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.TournamentSummary"}}}}
            }
        },
        "/tournaments/{name}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Tournaments"],
                "summary": "Get Tournament Details",
                "parameters": [{"type": "string", "name": "name", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.TournamentSummary"}}}
            }
        },
        "/predict": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Prediction"],
                "summary": "Predict Player Cluster",
                "parameters": [{"description": "Player stats", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.PredictionRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.ClusterPrediction"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "500": {"description": "Prediction failed", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "503": {"description": "Model not found", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "errorResponse": {"type": "object", "properties": {"error": {"type": "string"}}},
        "models.Options": {
            "type": "object",
            "properties": {
                "clusters": {"type": "array", "items": {"type": "integer"}},
                "tournaments": {"type": "array", "items": {"type": "string"}},
                "teams": {"type": "array", "items": {"type": "string"}},
                "features": {"type": "array", "items": {"type": "string"}}
            }
        },
        "models.Table": {
            "type": "object",
            "properties": {
                "columns": {"type": "array", "items": {"type": "string"}},
                "rows": {"type": "array", "items": {"type": "array", "items": {}}}
            }
        },
        "models.Describe": {
            "type": "object",
            "properties": {
                "count": {"type": "integer"},
                "mean": {"type": "number"},
                "std": {"type": "number"},
                "min": {"type": "number"},
                "25%": {"type": "number"},
                "50%": {"type": "number"},
                "75%": {"type": "number"},
                "max": {"type": "number"}
            }
        },
        "models.ColumnAggregate": {
            "type": "object",
            "properties": {
                "column": {"type": "string"},
                "value": {"type": "number"},
                "describe": {"$ref": "#/definitions/models.Describe"}
            }
        },
        "models.Aggregates": {
            "type": "object",
            "properties": {
                "statistic": {"type": "string", "enum": ["mean", "median", "describe"]},
                "columns": {"type": "array", "items": {"$ref": "#/definitions/models.ColumnAggregate"}}
            }
        },
        "models.OverallView": {
            "type": "object",
            "properties": {
                "cluster": {"type": "integer"},
                "tournament": {"type": "string"},
                "player_count": {"type": "integer"},
                "players": {"$ref": "#/definitions/models.Table"},
                "mean": {"$ref": "#/definitions/models.Aggregates"},
                "median": {"$ref": "#/definitions/models.Aggregates"}
            }
        },
        "models.TeamView": {
            "type": "object",
            "properties": {
                "team": {"type": "string"},
                "player_count": {"type": "integer"},
                "players": {"type": "array", "items": {"type": "string"}},
                "records": {"$ref": "#/definitions/models.Table"},
                "statistics": {"$ref": "#/definitions/models.Aggregates"}
            }
        },
        "models.ScatterPlot": {
            "type": "object",
            "properties": {
                "x": {"type": "string"},
                "y": {"type": "string"},
                "hue": {"type": "string"},
                "groups": {
                    "type": "array",
                    "items": {
                        "type": "object",
                        "properties": {
                            "hue": {"type": "string"},
                            "points": {
                                "type": "array",
                                "items": {
                                    "type": "object",
                                    "properties": {
                                        "player": {"type": "string"},
                                        "team": {"type": "string"},
                                        "tournament": {"type": "string"},
                                        "x": {"type": "number"},
                                        "y": {"type": "number"}
                                    }
                                }
                            }
                        }
                    }
                }
            }
        },
        "models.Histogram": {
            "type": "object",
            "properties": {
                "feature": {"type": "string"},
                "total": {"type": "integer"},
                "missing": {"type": "integer"},
                "bins": {
                    "type": "array",
                    "items": {
                        "type": "object",
                        "properties": {"lower": {"type": "number"}, "upper": {"type": "number"}, "count": {"type": "integer"}}
                    }
                }
            }
        },
        "models.LineSeries": {
            "type": "object",
            "properties": {
                "player": {"type": "string"},
                "metric": {"type": "string"},
                "points": {
                    "type": "array",
                    "items": {"type": "object", "properties": {"tournament": {"type": "string"}, "value": {"type": "number"}}}
                }
            }
        },
        "models.TournamentSummary": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "player_count": {"type": "integer"},
                "teams": {"type": "array", "items": {"type": "string"}},
                "clusters": {
                    "type": "array",
                    "items": {"type": "object", "properties": {"cluster": {"type": "integer"}, "players": {"type": "integer"}}}
                },
                "mean": {"$ref": "#/definitions/models.Aggregates"}
            }
        },
        "models.PredictionRequest": {
            "type": "object",
            "properties": {
                "average_combat_score": {"type": "integer", "minimum": 0, "maximum": 500},
                "kills_deaths": {"type": "number", "minimum": 0, "maximum": 5},
                "average_damage_per_round": {"type": "integer", "minimum": 0, "maximum": 500}
            }
        },
        "models.ClusterPrediction": {
            "type": "object",
            "properties": {
                "prediction_id": {"type": "string"},
                "cluster": {"type": "string"},
                "input": {"$ref": "#/definitions/models.PredictionRequest"},
                "predicted_at": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "VCT Cluster Dashboard API",
	Description:      "Player-performance clusters of VCT franchise players and cluster prediction for new stats.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
