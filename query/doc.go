/*
Package query filters, sorts and narrows trip records.

Every operation takes its inputs explicitly and returns a fresh value; the
package keeps no state between calls. A query produces a ResultSet, and the
caller passes that ResultSet on to the reductions and the detail lookup:

	rs := query.Run(store.Records(), query.Criteria{
	    Source:  "Bengaluru",
	    ACOnly:  true,
	    Sort:    query.SortFare,
	})

	cheapest, err := query.Cheapest(rs)
	if errors.Is(err, query.ErrEmptyResult) {
	    // nothing to narrow; cheapest is empty as well
	}

	rec, ok := query.FindByKey(cheapest, "KA-01")

# Parse failures

Filter thresholds exclude a record whose field does not parse (a rating of
"abc" never satisfies a minimum rating). Sort keys never drop a record:

  - fare ascending: unparsable fares go last
  - timing: unparsable timings sort as 12:00 AM, i.e. first
  - rating descending: unparsable ratings go last
  - duration: unparsable durations go last

All sorts are stable, so equal keys keep load order.
*/
package query
