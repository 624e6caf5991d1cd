package migrations

import (
	"encoding/json"

	"github.com/pocketbase/pocketbase/core"
	m "github.com/pocketbase/pocketbase/migrations"
)

func init() {
	m.Register(func(app core.App) error {
		jsonData := `{
			"id": "pbc_tickets00001",
			"name": "tickets",
			"type": "base",
			"system": false,
			"fields": [
				{
					"id": "text_from",
					"name": "from",
					"type": "text",
					"required": false,
					"presentable": false,
					"system": false,
					"hidden": false
				},
				{
					"id": "text_to",
					"name": "to",
					"type": "text",
					"required": false,
					"presentable": false,
					"system": false,
					"hidden": false
				},
				{
					"id": "text_date",
					"name": "date",
					"type": "text",
					"required": false,
					"presentable": false,
					"system": false,
					"hidden": false
				},
				{
					"id": "text_time",
					"name": "time",
					"type": "text",
					"required": false,
					"presentable": false,
					"system": false,
					"hidden": false
				},
				{
					"id": "text_price",
					"name": "price",
					"type": "text",
					"required": false,
					"presentable": false,
					"system": false,
					"hidden": false
				},
				{
					"id": "number_count",
					"name": "count",
					"type": "number",
					"required": false,
					"presentable": false,
					"system": false,
					"hidden": false,
					"onlyInt": true
				},
				{
					"id": "text_busmodel",
					"name": "busModel",
					"type": "text",
					"required": false,
					"presentable": false,
					"system": false,
					"hidden": false
				}
			],
			"indexes": [],
			"listRule": null,
			"viewRule": null,
			"createRule": null,
			"updateRule": null,
			"deleteRule": null
		}`

		collection := &core.Collection{}
		if err := json.Unmarshal([]byte(jsonData), &collection); err != nil {
			return err
		}

		return app.Save(collection)
	}, func(app core.App) error {
		collection, err := app.FindCollectionByNameOrId("pbc_tickets00001")
		if err != nil {
			return err
		}

		return app.Delete(collection)
	})
}
