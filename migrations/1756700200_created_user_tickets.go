package migrations

import (
	"encoding/json"

	"github.com/pocketbase/pocketbase/core"
	m "github.com/pocketbase/pocketbase/migrations"
)

func init() {
	m.Register(func(app core.App) error {
		jsonData := `{
			"id": "pbc_usertickets01",
			"name": "userTickets",
			"type": "base",
			"system": false,
			"fields": [
				{
					"id": "text_ticketid",
					"name": "ticketId",
					"type": "text",
					"required": false,
					"presentable": false,
					"system": false,
					"hidden": false
				},
				{
					"id": "text_username",
					"name": "username",
					"type": "text",
					"required": false,
					"presentable": false,
					"system": false,
					"hidden": false
				},
				{
					"id": "text_reference",
					"name": "reference",
					"type": "text",
					"required": false,
					"presentable": false,
					"system": false,
					"hidden": false
				},
				{
					"id": "text_from2",
					"name": "from",
					"type": "text",
					"required": false,
					"presentable": false,
					"system": false,
					"hidden": false
				},
				{
					"id": "text_to2",
					"name": "to",
					"type": "text",
					"required": false,
					"presentable": false,
					"system": false,
					"hidden": false
				},
				{
					"id": "text_date2",
					"name": "date",
					"type": "text",
					"required": false,
					"presentable": false,
					"system": false,
					"hidden": false
				},
				{
					"id": "text_time2",
					"name": "time",
					"type": "text",
					"required": false,
					"presentable": false,
					"system": false,
					"hidden": false
				},
				{
					"id": "text_price2",
					"name": "price",
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
		collection, err := app.FindCollectionByNameOrId("pbc_usertickets01")
		if err != nil {
			return err
		}

		return app.Delete(collection)
	})
}
