// Package topology models the cluster descriptor kept in the topology store
// and rewrites its names for a tenant instance.
//
// A descriptor looks like this:
//
//	{
//	  "rabbitmqConsulServicesNamePrefix": "rabbitmq-orders",
//	  "plainAuth": "amqp://svc:secret@",
//	  "settings": {
//	    "exchanges": {
//	      "orders": {
//	        "name": "orders",
//	        "type": "topic",
//	        "opts": {"durable": true},
//	        "binds": {
//	          "inbound": {
//	            "mq": {"name": "orders.in", "opts": {"messageTtl": 60000}},
//	            "routingKey": "orders.#"
//	          }
//	        }
//	      }
//	    }
//	  }
//	}
//
// With suffix "svc1" on host "host-a", Namespace turns the exchange into
// "orders-svc1" and the queue into "orders.in-svc1@host-a". Exchanges are
// shared by a tenant; queues are private to one running instance.
package topology
